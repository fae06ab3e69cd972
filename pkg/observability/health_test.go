package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ok(context.Context) error { return nil }

func fail(context.Context) error { return errors.New("connection refused") }

func TestHealthRegistry(t *testing.T) {
	tests := []struct {
		name   string
		checks map[string]HealthChecker
		want   HealthStatus
	}{
		{"no checks", nil, HealthStatusHealthy},
		{"all healthy", map[string]HealthChecker{
			"database": PingChecker("database", HealthStatusUnhealthy, ok),
			"events":   PingChecker("events", HealthStatusDegraded, ok),
		}, HealthStatusHealthy},
		{"degraded", map[string]HealthChecker{
			"database": PingChecker("database", HealthStatusUnhealthy, ok),
			"events":   PingChecker("events", HealthStatusDegraded, fail),
		}, HealthStatusDegraded},
		{"unhealthy wins", map[string]HealthChecker{
			"database": PingChecker("database", HealthStatusUnhealthy, fail),
			"events":   PingChecker("events", HealthStatusDegraded, fail),
		}, HealthStatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewHealthRegistry()
			for name, check := range tt.checks {
				registry.Register(name, check)
			}

			health := registry.Check(context.Background())

			assert.Equal(t, tt.want, health.Status)
			assert.Len(t, health.Checks, len(tt.checks))
		})
	}
}

func TestPingChecker(t *testing.T) {
	result := PingChecker("database", HealthStatusUnhealthy, fail)(context.Background())

	assert.Equal(t, HealthStatusUnhealthy, result.Status)
	assert.Equal(t, "database check failed: connection refused", result.Message)
}

func TestHealthRegistry_Names(t *testing.T) {
	registry := NewHealthRegistry()
	registry.Register("events", PingChecker("events", HealthStatusDegraded, ok))
	registry.Register("database", PingChecker("database", HealthStatusUnhealthy, ok))

	assert.Equal(t, []string{"database", "events"}, registry.Names())
}
