package apiclient

import (
	"context"
	"time"
)

// Health is the body of GET /api/health. On failure Status is "error" and
// Error carries the reason.
type Health struct {
	Status    string    `json:"status"`
	Uptime    string    `json:"uptime,omitempty"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"-"`
}

// OK reports whether the API answered healthy.
func (h Health) OK() bool {
	return h.Status == "ok"
}

// HealthCheck queries /api/health. It never fails: errors are folded into
// an error-shaped Health value.
func (c *Client) HealthCheck(ctx context.Context) Health {
	var h Health
	if err := c.Get(ctx, "/api/health", &h); err != nil {
		return Health{Status: "error", Error: err.Error(), CheckedAt: time.Now()}
	}
	if h.Status == "" {
		h.Status = "unknown"
	}
	h.CheckedAt = time.Now()
	return h
}
