package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body every error reply uses. The "error" key
// matches what gin.H-based handlers emit so clients parse one shape.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers from handler panics and turns them into a logged 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("panic", r),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// JSONError logs and sends a structured error response.
func JSONError(c *gin.Context, status int, message, details string) {
	GetLogger().Warn(message,
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.String("details", details))
	c.JSON(status, ErrorResponse{Error: message, Details: details})
}
