package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/api/explore", nil)
	assert.NoError(t, err)
	c.Request = req
	return c
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	c := newTestContext(t)
	c.Request.RemoteAddr = "10.0.0.1:4433"
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")
	c.Request.Header.Set("X-Real-IP", "198.51.100.4")

	assert.Equal(t, "203.0.113.7", clientIP(c))
}

func TestClientIPFallsBackToRealIP(t *testing.T) {
	c := newTestContext(t)
	c.Request.RemoteAddr = "10.0.0.1:4433"
	c.Request.Header.Set("X-Real-IP", " 198.51.100.4 ")

	assert.Equal(t, "198.51.100.4", clientIP(c))
}

func TestClientIPStripsPortFromRemoteAddr(t *testing.T) {
	c := newTestContext(t)
	c.Request.RemoteAddr = "192.0.2.10:52110"

	assert.Equal(t, "192.0.2.10", clientIP(c))
}

func TestClientIPKeepsBarePeerAddress(t *testing.T) {
	c := newTestContext(t)
	c.Request.RemoteAddr = "192.0.2.10"

	assert.Equal(t, "192.0.2.10", clientIP(c))
}
