package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// proxyHeaders in trust order. X-Forwarded-For may carry a chain; only the
// first hop is the caller.
var proxyHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

func clientIP(c *gin.Context) string {
	for _, header := range proxyHeaders {
		value := c.GetHeader(header)
		if value == "" {
			continue
		}
		if i := strings.IndexByte(value, ','); i >= 0 {
			value = value[:i]
		}
		return strings.TrimSpace(value)
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
