/*
Package api delivers rendered calendars over HTTP.

PURPOSE:
  A read-only preview surface: the same Document the CLI writes to
  disk, served as HTML or PDF. There are no mutating endpoints; the
  policy and event list come from the configuration file only.

ROUTES:
  GET /healthz              liveness probe
  GET /calendar.css         stylesheet the HTML pages link
  GET /calendar             configured year, HTML
  GET /calendar/{year}      HTML (404 unless it is the configured year)
  GET /calendar/{year}/pdf  PDF

MIDDLEWARE:
  Logger, Recoverer, RequestID, CORS.

SEE ALSO:
  - render: document construction and writers
  - cmd/ptocal: starts this server with -serve
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates the router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.Health)
	r.Get("/calendar.css", h.Stylesheet)
	r.Route("/calendar", func(r chi.Router) {
		r.Get("/", h.GetConfiguredYear)
		r.Get("/{year}", h.GetHTML)
		r.Get("/{year}/pdf", h.GetPDF)
	})

	return r
}
