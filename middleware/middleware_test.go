package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimiterAllow(t *testing.T) {
	t.Run("allows up to the limit then blocks", func(t *testing.T) {
		rl := NewRateLimiter(2, time.Minute)

		assert.True(t, rl.Allow("10.0.0.1"))
		assert.True(t, rl.Allow("10.0.0.1"))
		assert.False(t, rl.Allow("10.0.0.1"))
	})

	t.Run("limits are per IP", func(t *testing.T) {
		rl := NewRateLimiter(1, time.Minute)

		assert.True(t, rl.Allow("10.0.0.1"))
		assert.False(t, rl.Allow("10.0.0.1"))
		assert.True(t, rl.Allow("10.0.0.2"))
	})

	t.Run("window expiry frees the slot", func(t *testing.T) {
		rl := NewRateLimiter(1, 10*time.Millisecond)

		assert.True(t, rl.Allow("10.0.0.1"))
		assert.False(t, rl.Allow("10.0.0.1"))

		time.Sleep(20 * time.Millisecond)
		assert.True(t, rl.Allow("10.0.0.1"))
	})
}

func TestRequestTimeout(t *testing.T) {
	t.Run("fast handler passes through untouched", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestTimeout(time.Second))
		router.GET("/fast", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/fast", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "ok", recorder.Body.String())
	})

	t.Run("slow handler gets a 504", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestTimeout(20 * time.Millisecond))
		router.GET("/slow", func(c *gin.Context) {
			// Never writes; the middleware owns the response
			time.Sleep(150 * time.Millisecond)
		})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/slow", nil))

		assert.Equal(t, http.StatusGatewayTimeout, recorder.Code)
	})
}
