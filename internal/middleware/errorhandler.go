package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamsli/trading-service/internal/domain/dto"
	"github.com/iamsli/trading-service/internal/logger"
)

// ErrorHandler converts errors accumulated on the gin context into a
// generic JSON 500 response, unless a handler already wrote one. Handlers
// that want a specific status use AbortWithError instead; this middleware
// is the safety net for errors that were recorded but never answered.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	for _, e := range c.Errors {
		logger.L().Error().Err(e.Err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error", nil))
}

// AbortWithError records err on the context, logs it, and writes an
// ErrorResponse with the given status and client-facing message.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
		logger.L().Error().Err(err).Int("status", status).Msg(message)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
