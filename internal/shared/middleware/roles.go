package middleware

import (
	"strings"

	"library-backend/internal/shared/response"
	"library-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// RequireRoles lets the request through only when the caller holds at least one of roles.
// Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make([]string, 0, len(roles))
	for _, r := range roles {
		allowed = append(allowed, jwt.NormalizeRole(r))
	}
	denied := "Access denied: requires role " + strings.Join(allowed, " or ")

	return func(c *gin.Context) {
		value, exists := c.Get(ContextRoles)
		if !exists {
			response.Forbidden(c, denied)
			return
		}

		held, ok := value.(map[string]struct{})
		if !ok {
			response.Forbidden(c, denied)
			return
		}

		for _, r := range allowed {
			if _, ok := held[r]; ok {
				c.Next()
				return
			}
		}

		response.Forbidden(c, denied)
	}
}
