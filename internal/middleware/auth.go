package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jamstream/server/pkg/jwt"
	"github.com/jamstream/server/pkg/logger"
)

// Auth requires a valid bearer token and puts the caller's identity into
// the request context. Every route behind it sees profile_id and username.
func Auth(tokens *jwt.Manager, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing authorization header",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authorization header format",
			})
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			log.Warn("token validation failed",
				logger.String("request_id", GetRequestID(c)),
				logger.Err(err),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set("profile_id", claims.ProfileID)
		c.Set("username", claims.Username)

		c.Next()
	}
}
