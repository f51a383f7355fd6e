package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stratakit/strata/errors"
)

// AuthConfig configures the Bearer-token authentication middleware.
type AuthConfig struct {
	// TokenVerifier validates a token string and returns its claims.
	TokenVerifier func(token string) (map[string]any, error)
	// SkipPaths are URL path prefixes that bypass authentication.
	SkipPaths []string
}

// Auth returns a Gin middleware that validates Bearer tokens using the
// configured TokenVerifier. Validated claims are stored in the Gin context.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if strings.HasPrefix(path, skip) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := cfg.TokenVerifier(parts[1])
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}

		for key, value := range claims {
			c.Set(key, value)
		}
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	appErr := errors.Unauthorized(message)
	c.AbortWithStatusJSON(http.StatusUnauthorized, appErr.ToResponse())
}
