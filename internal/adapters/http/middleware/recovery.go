package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/clubarena/rosterhub/internal/adapters/http/common"
)

// Recovery converts panics into a 500 envelope instead of a dropped
// connection, logging the stack.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					"panic", r,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(RequestIDKey),
					"stack", string(debug.Stack()),
				)
				common.RespondError(c, http.StatusInternalServerError, "An unexpected error occurred", nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}
