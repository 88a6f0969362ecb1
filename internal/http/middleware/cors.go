package middleware

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "GET, POST, OPTIONS"
	corsAllowHeaders = "Content-Type"
)

// CORS sets the permissive cross-origin headers on every response and
// answers preflight with 200 and an empty body. A non-empty allow-list
// switches to gin-contrib/cors restricted to those origins.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	if len(allowedOrigins) > 0 {
		return cors.New(cors.Config{
			AllowOrigins:              allowedOrigins,
			AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:              []string{corsAllowHeaders},
			ExposeHeaders:             []string{RequestIDHeader},
			OptionsResponseStatusCode: http.StatusOK,
		})
	}

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", corsAllowMethods)
		c.Header("Access-Control-Allow-Headers", corsAllowHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
