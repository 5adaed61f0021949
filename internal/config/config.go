package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"invoicer/internal/domain"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type TimesheetConfig struct {
	Path              string `yaml:"path"`
	DateColumn        string `yaml:"date_column"`
	HoursColumn       string `yaml:"hours_column"`
	DescriptionColumn string `yaml:"description_column"`
	StartRow          int    `yaml:"start_row"`
	SheetName         string `yaml:"sheet_name"`
}

type InvoiceConfig struct {
	HourlyRate   float64 `yaml:"hourly_rate" json:"hourlyRate"`
	Currency     string  `yaml:"currency" json:"currency"`
	Prefix       string  `yaml:"prefix" json:"prefix"`
	TaxRate      float64 `yaml:"tax_rate" json:"taxRate"`
	Discount     float64 `yaml:"discount" json:"discount"`
	PaymentTerms string  `yaml:"payment_terms" json:"paymentTerms"`
}

type Config struct {
	Port      int             `yaml:"port"`
	Timesheet TimesheetConfig `yaml:"timesheet"`
	Invoice   InvoiceConfig   `yaml:"invoice"`
	Company   domain.Party    `yaml:"company"`
	Client    domain.Party    `yaml:"client"`
}

// Load builds the configuration in three layers: built-in defaults, an
// optional YAML file named by INVOICER_CONFIG, then environment variables
// (a .env file is honored via godotenv). Environment wins.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("INVOICER_CONFIG")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaults() Config {
	return Config{
		Port: 8080,
		Timesheet: TimesheetConfig{
			Path:              "data/Timesheet Template.xlsx",
			DateColumn:        "A",
			HoursColumn:       "B",
			DescriptionColumn: "C",
			StartRow:          2,
		},
		Invoice: InvoiceConfig{
			HourlyRate:   900,
			Currency:     "INR",
			Prefix:       "INV",
			TaxRate:      0,
			Discount:     0,
			PaymentTerms: "Net 30",
		},
		Company: domain.Party{
			Name:    "Your Company Name",
			Address: "Your Company Address",
			Email:   "your.email@example.com",
			Phone:   "+91-1234567890",
		},
		Client: domain.Party{
			Name:    "Client Company Name",
			Address: "Client Company Address",
			Email:   "client@example.com",
			Phone:   "+91-9876543210",
		},
	}
}

func applyEnv(cfg *Config) error {
	var err error

	cfg.Port, err = getEnvInt("PORT", cfg.Port)
	if err != nil {
		return err
	}

	cfg.Timesheet.Path = getEnv("TIMESHEET_PATH", cfg.Timesheet.Path)
	cfg.Timesheet.DateColumn = getEnv("TIMESHEET_DATE_COLUMN", cfg.Timesheet.DateColumn)
	cfg.Timesheet.HoursColumn = getEnv("TIMESHEET_HOURS_COLUMN", cfg.Timesheet.HoursColumn)
	cfg.Timesheet.DescriptionColumn = getEnv("TIMESHEET_DESCRIPTION_COLUMN", cfg.Timesheet.DescriptionColumn)
	cfg.Timesheet.SheetName = getEnv("TIMESHEET_SHEET_NAME", cfg.Timesheet.SheetName)
	cfg.Timesheet.StartRow, err = getEnvInt("TIMESHEET_START_ROW", cfg.Timesheet.StartRow)
	if err != nil {
		return err
	}

	cfg.Invoice.HourlyRate, err = getEnvFloat("HOURLY_RATE", cfg.Invoice.HourlyRate)
	if err != nil {
		return err
	}
	cfg.Invoice.Currency = getEnv("CURRENCY", cfg.Invoice.Currency)
	cfg.Invoice.Prefix = getEnv("INVOICE_PREFIX", cfg.Invoice.Prefix)
	cfg.Invoice.TaxRate, err = getEnvFloat("TAX_RATE", cfg.Invoice.TaxRate)
	if err != nil {
		return err
	}
	cfg.Invoice.Discount, err = getEnvFloat("DISCOUNT", cfg.Invoice.Discount)
	if err != nil {
		return err
	}
	cfg.Invoice.PaymentTerms = getEnv("PAYMENT_TERMS", cfg.Invoice.PaymentTerms)

	cfg.Company.Name = getEnv("COMPANY_NAME", cfg.Company.Name)
	cfg.Company.Address = getEnv("COMPANY_ADDRESS", cfg.Company.Address)
	cfg.Company.Email = getEnv("COMPANY_EMAIL", cfg.Company.Email)
	cfg.Company.Phone = getEnv("COMPANY_PHONE", cfg.Company.Phone)

	cfg.Client.Name = getEnv("CLIENT_NAME", cfg.Client.Name)
	cfg.Client.Address = getEnv("CLIENT_ADDRESS", cfg.Client.Address)
	cfg.Client.Email = getEnv("CLIENT_EMAIL", cfg.Client.Email)
	cfg.Client.Phone = getEnv("CLIENT_PHONE", cfg.Client.Phone)

	return nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return value, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return value, nil
}
