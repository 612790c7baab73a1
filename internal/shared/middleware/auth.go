package middleware

import (
	"strings"

	"library-backend/internal/shared/response"
	"library-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextRoles  = "roles"
)

// AuthMiddleware verifies the bearer token and stores the caller identity in the gin context
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			return
		}

		// 2. Extract token from "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "invalid authorization header format")
			return
		}

		// 3. Verify and parse JWT
		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("token rejected")
			response.Unauthorized(c, "invalid token")
			return
		}

		if claims.UserID == "" {
			response.Unauthorized(c, "invalid user ID in token")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, jwt.NormalizeRole(claims.Role))
		c.Set(ContextRoles, claims.RoleSet())

		c.Next()
	}
}
