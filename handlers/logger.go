package handlers

import (
	"ritmo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// process-wide one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// callerID extracts the authenticated user ID the auth middleware stored.
func callerID(c *gin.Context) (string, bool) {
	id, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok && idStr != ""
}
