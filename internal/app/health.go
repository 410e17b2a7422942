package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether the session store and catalog database are
// reachable. Both dependencies must answer within healthCheckTimeout.
type HealthChecker struct {
	infra Infrastructure
}

func NewHealthChecker(infra Infrastructure) *HealthChecker {
	return &HealthChecker{
		infra: infra,
	}
}

func (h *HealthChecker) check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	components := map[string]string{
		"postgres": "up",
		"redis":    "up",
	}

	if err := h.infra.Postgres().Ping(ctx); err != nil {
		components["postgres"] = err.Error()
	}
	if err := h.infra.Redis().Ping(ctx); err != nil {
		components["redis"] = err.Error()
	}

	return components
}

func (h *HealthChecker) Handler(c *gin.Context) {
	components := h.check(c.Request.Context())

	for _, state := range components {
		if state != "up" {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "fail",
				"components": components,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "pass",
		"components": components,
	})
}
