// Package dashboard serves the fixed headline stats for the dashboard page.
package dashboard

import (
	"net/http"

	"github.com/bissquit/assessment-garden/internal/domain"
	"github.com/bissquit/assessment-garden/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the dashboard module.
type Handler struct {
	stats []domain.DashboardStat
}

// NewHandler creates a new dashboard handler with the fixture stats.
func NewHandler() *Handler {
	return &Handler{
		stats: []domain.DashboardStat{
			{Label: "Active users", Value: 1280, Delta: "+4.2%"},
			{Label: "Assessments in progress", Value: 86, Delta: "+1.1%"},
			{Label: "Avg. completion time (hrs)", Value: 5.4, Delta: "-0.3"},
		},
	}
}

// RegisterRoutes registers all HTTP routes for the dashboard module.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.Get)
}

// Get handles GET /dashboard request.
func (h *Handler) Get(w http.ResponseWriter, _ *http.Request) {
	httputil.JSON(w, http.StatusOK, map[string][]domain.DashboardStat{"stats": h.stats})
}
