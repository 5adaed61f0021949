package service

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"invoicer/internal/config"
	"invoicer/internal/domain"
	"invoicer/internal/invoice"
	"invoicer/internal/sheet"
	"invoicer/internal/timesheet"
)

// Service orchestrates one timesheet-to-invoice pass: decode the workbook,
// aggregate rows, build line items, assemble the invoice. It holds no
// mutable state, so concurrent calls are independent.
type Service struct {
	cfg config.Config
	log *slog.Logger
	now func() time.Time
}

func New(cfg config.Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, log: logger, now: time.Now}
}

// WithClock fixes the service's notion of "now". Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ProcessTimesheet parses workbook bytes into a draft invoice. Structural
// problems (undecodable file, missing sheet or column) fail the whole call;
// malformed rows are skipped and counted.
func (s *Service) ProcessTimesheet(data []byte, invoiceMonth string) (domain.Invoice, domain.ParseStats, error) {
	wb, err := sheet.Open(data)
	if err != nil {
		return domain.Invoice{}, domain.ParseStats{}, err
	}
	defer wb.Close()

	rows, err := wb.Rows(s.cfg.Timesheet.SheetName)
	if err != nil {
		return domain.Invoice{}, domain.ParseStats{}, err
	}

	result, err := timesheet.Aggregate(rows, timesheet.Options{
		DateColumn:        s.cfg.Timesheet.DateColumn,
		HoursColumn:       s.cfg.Timesheet.HoursColumn,
		DescriptionColumn: s.cfg.Timesheet.DescriptionColumn,
		StartRow:          s.cfg.Timesheet.StartRow,
		Logger:            s.log,
	})
	if err != nil {
		return domain.Invoice{}, domain.ParseStats{}, err
	}

	now := s.now()
	items, month := invoice.BuildItems(result, s.cfg.Invoice.HourlyRate, now)

	inv := invoice.Assemble(invoice.AssembleParams{
		Items:        items,
		TotalHours:   result.TotalHours,
		Month:        month,
		InvoiceMonth: invoiceMonth,
		Now:          now,
		Config:       s.cfg,
	})

	stats := domain.ParseStats{
		RowsProcessed: result.RowsProcessed,
		RowsSkipped:   result.RowsSkipped,
		TotalHours:    result.TotalHours,
		Items:         len(items),
	}

	s.log.Info("timesheet parsed",
		"rows_processed", stats.RowsProcessed,
		"rows_skipped", stats.RowsSkipped,
		"items", stats.Items,
		"total_hours", stats.TotalHours,
		"month", month,
	)
	if stats.Items == 0 {
		s.log.Warn("no billable rows found in timesheet",
			"rows_skipped", stats.RowsSkipped)
	}

	return inv, stats, nil
}

// ProcessTimesheetFile reads a timesheet from disk; a blank path means the
// configured default.
func (s *Service) ProcessTimesheetFile(path, invoiceMonth string) (domain.Invoice, domain.ParseStats, error) {
	if strings.TrimSpace(path) == "" {
		path = s.cfg.Timesheet.Path
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Invoice{}, domain.ParseStats{}, fmt.Errorf("read timesheet %s: %w", path, err)
	}
	return s.ProcessTimesheet(data, invoiceMonth)
}

// SheetNames lists the sheets of an uploaded workbook so the caller can
// pick one before processing.
func (s *Service) SheetNames(data []byte) ([]string, error) {
	wb, err := sheet.Open(data)
	if err != nil {
		return nil, err
	}
	defer wb.Close()
	return wb.Sheets(), nil
}

// ClientConfig is the subset of configuration safe to expose to the form
// UI; server-side paths stay out.
type ClientConfig struct {
	Company domain.Party         `json:"company"`
	Client  domain.Party         `json:"client"`
	Invoice config.InvoiceConfig `json:"invoice"`
}

func (s *Service) ClientConfig() ClientConfig {
	return ClientConfig{
		Company: s.cfg.Company,
		Client:  s.cfg.Client,
		Invoice: s.cfg.Invoice,
	}
}
