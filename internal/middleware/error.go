package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apperrors "github.com/AlessandroArtoni/AmadelliArtoniBacceli/pkg/errors"
)

// ErrorLogger logs the errors handlers attached to the context. Responses
// are already written by then; client errors are logged at debug level.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			level := zerolog.ErrorLevel
			if apperrors.Is(e.Err, apperrors.ErrValidation) || apperrors.Is(e.Err, apperrors.ErrNotFound) {
				level = zerolog.DebugLevel
			}

			log.WithLevel(level).
				Err(e.Err).
				Str("request_id", c.GetString(ContextRequestID)).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")
		}
	}
}
