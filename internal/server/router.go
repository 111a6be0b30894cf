package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/logging"
)

type handler struct {
	menu   models.Menu
	logger logging.Logger
}

// NewRouter serves the menu description in JSON and YAML, a health probe and
// the metrics endpoint.
func NewRouter(menu models.Menu, logger logging.Logger, metrics *Metrics) http.Handler {
	h := &handler{menu: menu, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Get("/menu-items.json", h.menuJSON)
	r.Get("/menu-items.yaml", h.menuYAML)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

func (h *handler) menuJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.menu); err != nil {
		h.logger.Error(r.Context(), "encode menu", "format", "json", "error", err)
	}
}

func (h *handler) menuYAML(w http.ResponseWriter, r *http.Request) {
	data, err := yaml.Marshal(h.menu)
	if err != nil {
		h.logger.Error(r.Context(), "encode menu", "format", "yaml", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(data)
}
