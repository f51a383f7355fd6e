package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version returns a handler for GET /version reporting service identity.
func Version(serviceName, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": serviceName,
			"version": version,
		})
	}
}
