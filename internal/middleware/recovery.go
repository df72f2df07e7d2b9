package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/iamsli/trading-service/internal/domain/dto"
	"github.com/iamsli/trading-service/internal/logger"
)

// RecoveryMiddleware recovers from panics during request handling, logs
// the stack trace, and returns a standardized JSON 500 response. The
// recovered value is logged but never included in the response body.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse("internal server error", nil))
			}
		}()

		c.Next()
	}
}
