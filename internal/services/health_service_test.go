package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthServiceLoadedDataset(t *testing.T) {
	svc := NewHealthService("dealer-dashboard", "1.0.0", 42, nil)

	status := svc.Health(context.Background())

	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "loaded", status.Dataset.Status)
	assert.Equal(t, 42, status.Dataset.Records)
	assert.True(t, svc.Ready(context.Background()))
}

func TestHealthServiceEmptyDataset(t *testing.T) {
	svc := NewHealthService("dealer-dashboard", "1.0.0", 0, nil)

	status := svc.Health(context.Background())

	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "empty", status.Dataset.Status)
	assert.False(t, svc.Ready(context.Background()))
}

func TestHealthServiceVersion(t *testing.T) {
	svc := NewHealthService("dealer-dashboard", "1.0.0", 42, nil)

	info := svc.Version(context.Background())

	assert.Equal(t, "dealer-dashboard", info.Name)
	assert.Equal(t, "1.0.0", info.Version)
	assert.NotEmpty(t, info.Uptime)
}
