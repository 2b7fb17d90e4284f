package middleware

import (
	"strings"

	"literacy_dapat_backend/internal/config"
	"literacy_dapat_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a bearer token (401) and requests
// whose token fails signature or expiry checks (403). Valid claims are
// stored on the context for the handlers downstream.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Forbidden(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
