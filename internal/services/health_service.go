package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// HealthStatus is the health endpoint response body.
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Dataset   DatasetHealth          `json:"dataset"`
}

// DatasetHealth reports whether contract data was loaded.
type DatasetHealth struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

// VersionInfo is the version endpoint response body.
type VersionInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// HealthService answers liveness, readiness and version queries.
type HealthService struct {
	name      string
	version   string
	records   int
	startTime time.Time
	logger    *slog.Logger
}

// NewHealthService creates a health service for a dataset of the given size.
func NewHealthService(name, version string, records int, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		name:      name,
		version:   version,
		records:   records,
		startTime: time.Now(),
		logger:    logger,
	}
}

// Health returns the full health report including runtime stats.
func (s *HealthService) Health(ctx context.Context) HealthStatus {
	status := "healthy"
	dataset := DatasetHealth{Status: "loaded", Records: s.records}
	if s.records == 0 {
		status = "degraded"
		dataset.Status = "empty"
	}

	return HealthStatus{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Version:   s.version,
		Runtime: map[string]interface{}{
			"go_version":     runtime.Version(),
			"goroutines":     runtime.NumGoroutine(),
			"uptime_seconds": time.Since(s.startTime).Seconds(),
		},
		Dataset: dataset,
	}
}

// Ready reports whether the service can answer dashboard queries.
func (s *HealthService) Ready(ctx context.Context) bool {
	return s.records > 0
}

// Version returns build identity and uptime.
func (s *HealthService) Version(ctx context.Context) VersionInfo {
	return VersionInfo{
		Name:    s.name,
		Version: s.version,
		Uptime:  time.Since(s.startTime).Round(time.Second).String(),
	}
}
