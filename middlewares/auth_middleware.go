package middlewares

import (
	"net/http"
	"strings"

	"github.com/totomace/VitaZen-sub000/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and puts "uid" and "email" on the context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		if len(key) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set"})
			return
		}

		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := utils.ParseJWT(key, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set("uid", claims.UID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// bearerToken reads the Authorization header, or the "token" query param
// for websocket upgrades where clients cannot set headers.
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c.IsWebsocket() {
		return c.Query("token")
	}
	return ""
}
