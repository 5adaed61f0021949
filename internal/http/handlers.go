package http

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"

	"invoicer/internal/service"
	"invoicer/internal/sheet"
	"invoicer/internal/timesheet"
)

const maxUploadBytes = 32 << 20

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// CreateFromTimesheet handles the upload form. With a "file" part the
// uploaded workbook is processed in memory; without one the handler falls
// back to the "timesheetPath" form value or the configured default path.
func (h *Handler) CreateFromTimesheet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}
	invoiceMonth := r.FormValue("month")

	file, _, err := r.FormFile("file")
	if err != nil {
		h.processPath(w, r.FormValue("timesheetPath"), invoiceMonth)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	inv, stats, err := h.svc.ProcessTimesheet(data, invoiceMonth)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"invoice": inv, "stats": stats})
}

// CreateFromDefault processes the configured default timesheet path.
func (h *Handler) CreateFromDefault(w http.ResponseWriter, r *http.Request) {
	h.processPath(w, "", r.URL.Query().Get("month"))
}

func (h *Handler) processPath(w http.ResponseWriter, path, invoiceMonth string) {
	inv, stats, err := h.svc.ProcessTimesheetFile(path, invoiceMonth)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"invoice": inv, "stats": stats})
}

// ListSheets reports the sheet names of an uploaded workbook.
func (h *Handler) ListSheets(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	names, err := h.svc.SheetNames(data)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sheet_names": names})
}

func (h *Handler) GetConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ClientConfig())
}

// statusFor maps engine failures onto HTTP statuses: a missing file is 404,
// structural misconfiguration is 400, anything else 500.
func statusFor(err error) int {
	var sheetErr *sheet.SheetNotFoundError
	var columnErr *timesheet.ColumnNotFoundError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, sheet.ErrEmptyInput),
		errors.Is(err, sheet.ErrNoSheets),
		errors.As(err, &sheetErr),
		errors.As(err, &columnErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
