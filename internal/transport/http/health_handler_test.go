package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealerpulse/internal/services"
)

func healthRouter(records int) (*HealthHandler, http.Handler) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := services.NewHealthService("dealer-dashboard", "1.0.0", records, logger)
	h := NewHealthHandler(svc, logger)
	return h, h.Routes()
}

func TestGetHealthLoaded(t *testing.T) {
	_, router := healthRouter(42)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])

	dataset := body["dataset"].(map[string]interface{})
	assert.Equal(t, 42.0, dataset["records"])
}

func TestGetHealthEmptyDataset(t *testing.T) {
	_, router := healthRouter(0)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name     string
		records  int
		wantCode int
	}{
		{"ready", 10, http.StatusOK},
		{"not ready", 0, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := healthRouter(tt.records)

			req := httptest.NewRequest(http.MethodGet, "/ready", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestLiveness(t *testing.T) {
	_, router := healthRouter(0)

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// liveness does not depend on the dataset
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVersionEndpoint(t *testing.T) {
	h, _ := healthRouter(1)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	h.GetVersion(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "dealer-dashboard", body["name"])
	assert.Equal(t, "1.0.0", body["version"])
}
