package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle/internal/logger"
)

// Recovery turns a panic into the generic 500 body. The panic value and
// stack go to the log only.
func Recovery(log *logger.Logger, message string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorw("panic detected",
			"request_id", c.GetString(RequestIDKey),
			"panic", recovered,
			"stack", string(debug.Stack()),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": message})
	})
}
