package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bissquit/assessment-garden/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	r := chi.NewRouter()
	NewHandler().RegisterRoutes(r)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]domain.DashboardStat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	stats := body["stats"]
	require.Len(t, stats, 3)
	assert.Equal(t, domain.DashboardStat{Label: "Active users", Value: 1280, Delta: "+4.2%"}, stats[0])
	assert.Equal(t, domain.DashboardStat{Label: "Assessments in progress", Value: 86, Delta: "+1.1%"}, stats[1])
	assert.Equal(t, domain.DashboardStat{Label: "Avg. completion time (hrs)", Value: 5.4, Delta: "-0.3"}, stats[2])
}
