package endpoint

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stratakit/strata/component"
)

// HealthChecker reports the health of the application's components.
type HealthChecker func(ctx context.Context) []component.Health

// Health returns a handler for GET /health. It responds 200 when every
// component is healthy and 503 otherwise, listing per-component status.
func Health(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var components []component.Health
		if checker != nil {
			components = checker(c.Request.Context())
		}

		status := component.StatusHealthy
		httpStatus := http.StatusOK
		for _, h := range components {
			if h.Status != component.StatusHealthy {
				status = component.StatusUnhealthy
				httpStatus = http.StatusServiceUnavailable
				break
			}
		}

		c.JSON(httpStatus, gin.H{
			"service":    serviceName,
			"status":     status,
			"components": components,
		})
	}
}
