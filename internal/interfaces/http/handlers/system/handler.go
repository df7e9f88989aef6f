// Package system serves liveness and readiness probes.
package system

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/toolbox/internal/shared/biztime"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a backing service is reachable.
type Pinger func(ctx context.Context) error

type Handler struct {
	version string
	checks  map[string]Pinger
	logger  logger.Interface
}

// NewHandler takes named dependency checks. A nil check is skipped.
func NewHandler(version string, checks map[string]Pinger, logger logger.Interface) *Handler {
	return &Handler{version: version, checks: checks, logger: logger}
}

// Health handles GET /health. It answers 503 when any dependency is down.
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if check == nil {
			continue
		}
		if err := check(ctx); err != nil {
			h.logger.Warnw("health check failed", "dependency", name, "error", err)
			deps[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "up"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	c.JSON(status, gin.H{
		"status":       overall,
		"version":      h.version,
		"time":         biztime.NowUTC(),
		"dependencies": deps,
	})
}
