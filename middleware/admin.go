package middleware

import (
	"net/http"
	"strings"

	"tour-backend/auth"
	"tour-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminRequired rejects requests without a valid Bearer session token.
// Content writes and the dashboard endpoints sit behind it; reads and the
// public review form do not.
func AdminRequired(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if err := manager.Validate(token); err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired session")
			c.Abort()
			return
		}

		c.Next()
	}
}
