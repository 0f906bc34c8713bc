package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CacheControl marks GET responses as publicly cacheable for maxAge seconds.
// Everything else is no-store. Error responses override it.
func CacheControl(maxAge int) gin.HandlerFunc {
	public := fmt.Sprintf("public, max-age=%d", maxAge)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || maxAge <= 0 {
			c.Header("Cache-Control", "no-store")
			c.Next()
			return
		}

		c.Header("Cache-Control", public)
		c.Next()
	}
}
