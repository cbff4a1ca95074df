// Package users provides the read-only user directory endpoint with
// free-text search and exact-match role/status filters.
package users

import (
	"net/http"

	"github.com/bissquit/assessment-garden/internal/domain"
	"github.com/bissquit/assessment-garden/internal/pkg/ctxlog"
	"github.com/bissquit/assessment-garden/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the users module.
type Handler struct {
	service *Service
}

// NewHandler creates a new users handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers all HTTP routes for the users module.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.List)
}

// List handles GET /users request.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := Filter{
		Search: q.Get("search"),
		Role:   q.Get("role"),
		Status: q.Get("status"),
	}

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		ctxlog.FromContext(r.Context()).Error("internal error", "error", err)
		httputil.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httputil.JSON(w, http.StatusOK, map[string][]domain.User{"items": items})
}
