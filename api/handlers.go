package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/warp/pto-calendar/config"
	"github.com/warp/pto-calendar/render"
)

// Handler serves rendered calendars for one configured year.
type Handler struct {
	cfg config.Config
}

// NewHandler creates a handler for the given configuration.
func NewHandler(cfg config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// Stylesheet serves the CSS linked by the HTML pages.
func (h *Handler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css")
	w.Write([]byte(render.Stylesheet))
}

// GetConfiguredYear serves the configured year's calendar as HTML.
func (h *Handler) GetConfiguredYear(w http.ResponseWriter, r *http.Request) {
	h.serveHTML(w)
}

// GetHTML serves /calendar/{year} as HTML. The event list describes a
// single year, so any other year is not found.
func (h *Handler) GetHTML(w http.ResponseWriter, r *http.Request) {
	if !h.yearMatches(w, r) {
		return
	}
	h.serveHTML(w)
}

// GetPDF serves /calendar/{year}/pdf.
func (h *Handler) GetPDF(w http.ResponseWriter, r *http.Request) {
	if !h.yearMatches(w, r) {
		return
	}
	doc, err := h.build()
	if err != nil {
		h.renderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	writer := &render.PDFWriter{}
	if err := writer.WriteDocument(w, doc); err != nil {
		log.WithError(err).Error("writing pdf response")
	}
}

func (h *Handler) serveHTML(w http.ResponseWriter) {
	doc, err := h.build()
	if err != nil {
		h.renderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer := &render.HTMLWriter{Stylesheet: "calendar.css"}
	if err := writer.WritePage(w, doc); err != nil {
		log.WithError(err).Error("writing html response")
	}
}

func (h *Handler) build() (*render.Document, error) {
	return render.BuildYear(render.Input{
		Company:  h.cfg.Company,
		Employee: h.cfg.Employee,
		Year:     h.cfg.Year,
		Policy:   h.cfg.Policy,
		Events:   h.cfg.Records(),
	})
}

func (h *Handler) yearMatches(w http.ResponseWriter, r *http.Request) bool {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return false
	}
	if year != h.cfg.Year {
		http.Error(w, "no calendar configured for year "+raw, http.StatusNotFound)
		return false
	}
	return true
}

func (h *Handler) renderError(w http.ResponseWriter, err error) {
	log.WithError(err).Error("rendering calendar")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
