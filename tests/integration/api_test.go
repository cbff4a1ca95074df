//go:build integration

package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/bissquit/assessment-garden/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t,
		"Mock API running. Try /api/health, /api/dashboard, /api/assessments, /api/users.",
		body["message"])
}

func TestHealth(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/api/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	testutil.DecodeJSON(t, resp, &body)
	assert.Equal(t, "ok", body["status"])

	_, err = time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}

func TestHealthz(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/healthz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", testutil.ReadBody(t, resp))
}

func TestVersion(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/version")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	testutil.DecodeJSON(t, resp, &body)
	assert.Contains(t, body, "version")
}

func TestDashboard(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/api/dashboard")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Stats []struct {
			Label string  `json:"label"`
			Value float64 `json:"value"`
			Delta string  `json:"delta"`
		} `json:"stats"`
	}
	testutil.DecodeJSON(t, resp, &body)

	require.Len(t, body.Stats, 3)
	assert.Equal(t, "Active users", body.Stats[0].Label)
	assert.Equal(t, float64(1280), body.Stats[0].Value)
	assert.Equal(t, "+4.2%", body.Stats[0].Delta)
}

func TestUnknownRouteReturns404(t *testing.T) {
	client := newTestClient(t).WithoutValidation()

	resp, err := client.GET("/api/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
