package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connectz/pkg/auth"
	"github.com/iamasit07/connectz/pkg/httputil"
)

const ClientKey = "client"

// AuthMiddleware requires a bearer token signed with secret. An empty secret
// leaves the routes open.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		tokenString, err := httputil.BearerToken(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateClientToken(secret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ClientKey, claims.Client)
		c.Next()
	}
}
