package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/httputil"
)

// DefaultMaxBodySize fits any contact form.
const DefaultMaxBodySize int64 = 64 << 10

// BodyLimit rejects requests whose declared body exceeds maxBytes and caps
// the rest while they are read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, httputil.Response{
				Error: &httputil.Error{
					Code:    http.StatusRequestEntityTooLarge,
					Message: fmt.Sprintf("body size exceeds %d bytes", maxBytes),
				},
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
