package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/pkg/errors"
	"github.com/portal-cosmico/backend/pkg/logger"
)

// ErrorHandlerMiddleware handles errors and panics
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Str("stack", stack).
					Msg("Panic recovered")

				c.JSON(http.StatusInternalServerError, gin.H{
					"error":   "Internal Server Error",
					"message": "An unexpected error occurred",
				})
				c.Abort()
			}
		}()

		c.Next()

		// Handle errors attached to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			if appErr, ok := err.(*errors.AppError); ok {
				c.JSON(appErr.Code, gin.H{
					"error": appErr.Message,
				})
				return
			}

			if purchaseErr, ok := err.(*errors.PurchaseError); ok {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":    purchaseErr.Error(),
					"required": purchaseErr.Required,
					"current":  purchaseErr.Current,
					"missing":  purchaseErr.Missing,
				})
				return
			}

			logger.Error().Err(err).Msg("Unhandled request error")

			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal Server Error",
			})
		}
	}
}
