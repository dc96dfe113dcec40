package middlewares

import (
	"time"

	"github.com/totomace/VitaZen-sub000/utils"

	"github.com/gin-gonic/gin"
)

// LoggerMiddleware logs every request with its status code and duration.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		utils.LogRequest(c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
