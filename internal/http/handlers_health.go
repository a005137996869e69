package httpx

import (
	"context"
	"net/http"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to the Pinger interface.
type PingerFunc func(ctx context.Context) error

// Ping calls the wrapped function.
func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandlers serves liveness checks over the service's dependencies.
type HealthHandlers struct {
	DB    Pinger
	Cache Pinger
}

// Health handles GET /api/health. Any unreachable dependency makes the
// service report unhealthy with a 503.
func (h *HealthHandlers) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{}
	healthy := true

	if h.DB != nil {
		checks["database"] = "ok"
		if err := h.DB.Ping(r.Context()); err != nil {
			checks["database"] = "unreachable"
			healthy = false
		}
	}
	if h.Cache != nil {
		checks["cache"] = "ok"
		if err := h.Cache.Ping(r.Context()); err != nil {
			checks["cache"] = "unreachable"
			healthy = false
		}
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	WriteJSON(w, code, map[string]any{"status": status, "checks": checks})
}
