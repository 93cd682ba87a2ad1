package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/helious23/challenge-backend/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewServerAppliesConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: config.ServerConfig{
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   7 * time.Second,
			MaxHeaderBytes: 2048,
		},
	}

	server := NewServer("127.0.0.1:0", cfg)
	assert.Equal(t, 5*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 7*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 2048, server.httpServer.MaxHeaderBytes)
}

func TestNewServerDefaultsWithoutConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	server := NewServer("127.0.0.1:0", nil)
	assert.Equal(t, 30*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 30*time.Second, server.httpServer.WriteTimeout)
	assert.Equal(t, 1<<20, server.httpServer.MaxHeaderBytes)
}

func TestSetupMiddlewareHonorsSecurityConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cors disabled", func(t *testing.T) {
		cfg := &config.Config{Security: config.SecurityConfig{EnableCORS: false, MaxRequestSize: 1024}}
		server := NewServer("127.0.0.1:0", cfg)
		server.setupMiddleware()
		server.engine.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		server.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("request size limit from config", func(t *testing.T) {
		cfg := &config.Config{Security: config.SecurityConfig{EnableCORS: true, MaxRequestSize: 16}}
		server := NewServer("127.0.0.1:0", cfg)
		server.setupMiddleware()
		server.engine.POST("/test", func(c *gin.Context) {
			var body map[string]any
			if err := c.ShouldBindJSON(&body); err != nil {
				c.Status(http.StatusRequestEntityTooLarge)
				return
			}
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"a":"`+strings.Repeat("x", 64)+`"}`))
		server.engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
