package middleware

import (
	"strings"

	"github.com/Ss09shubh/mock-test/internal/config"
	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the principal from a Bearer token (or ?token=)
// and stores the claims on the context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware is the single role-gating layer: the principal's role must
// be in the allowed list. There is no implicit admin passthrough; routes
// open to both roles list both.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}

		util.Forbidden(c, "insufficient role")
		c.Abort()
	}
}
