package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// HealthHandler answers liveness/readiness probes.
type HealthHandler struct {
	catalogSize int
}

// NewHealthHandler creates the handler. catalogSize is reported on the
// readiness probe so an empty catalog is visible at deploy time.
func NewHealthHandler(catalogSize int) *HealthHandler {
	return &HealthHandler{catalogSize: catalogSize}
}

// Ping handles GET /ping.
func (h *HealthHandler) Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"message": "pong"})
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"status": "alive"})
}

// Readiness handles GET /health/ready.
func (h *HealthHandler) Readiness(ctx context.Context, c *app.RequestContext) {
	if h.catalogSize == 0 {
		c.JSON(consts.StatusServiceUnavailable, utils.H{
			"status": "not ready",
			"reason": "wine catalog is empty",
		})
		return
	}
	c.JSON(consts.StatusOK, utils.H{
		"status":  "ready",
		"catalog": h.catalogSize,
	})
}
