package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handler *Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger))
	r.Use(Timeout)
	r.Use(CORS)

	r.Get("/healthz", handler.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/invoices/from-timesheet", handler.CreateFromTimesheet)
		r.Get("/invoices/from-timesheet", handler.CreateFromDefault)
		r.Post("/sheets", handler.ListSheets)
		r.Get("/config", handler.GetConfig)
	})

	return r
}
