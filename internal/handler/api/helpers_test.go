//go:build unit

package api_test

import (
	"net/http"

	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

const bearer = "bearer-token"

// fakeAuth stands in for RequireAuth: any bearer token authenticates as p.
func fakeAuth(p *auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("principal", p)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}
