package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
)

// Pinger is a dependency whose reachability is reported by the health check
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness
type HealthHandler struct {
	checks       map[string]Pinger
	timeProvider coreport.TimeProvider
	startedAt    time.Time
}

// NewHealthHandler creates a handler reporting on the named dependencies
func NewHealthHandler(checks map[string]Pinger, timeProvider coreport.TimeProvider) *HealthHandler {
	return &HealthHandler{
		checks:       checks,
		timeProvider: timeProvider,
		startedAt:    timeProvider.Now(),
	}
}

// Liveness handles GET /healthz; it never touches dependencies
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"uptimeSeconds": int64(h.timeProvider.Since(h.startedAt).Std().Seconds()),
	})
}

// Readiness handles GET /readyz and pings every dependency
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			results[name] = err.Error()
			continue
		}
		results[name] = "ok"
	}

	c.JSON(status, gin.H{"checks": results})
}
