package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testOrigin = "https://dashboard.example.com"

func newCORSRouter(middleware gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	if middleware != nil {
		router.Use(middleware)
	}
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.Default()

	t.Run("disabled returns nil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(false, testOrigin, logger))
	})

	t.Run("enabled without origins returns nil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(true, "", logger))
	})

	t.Run("enabled with origins", func(t *testing.T) {
		assert.NotNil(t, createCORSMiddleware(true, testOrigin+",https://admin.example.com", logger))
	})
}

func TestParseOrigins(t *testing.T) {
	t.Run("comma separated", func(t *testing.T) {
		origins := parseOrigins(testOrigin + ",https://admin.example.com")
		assert.Equal(t, []string{testOrigin, "https://admin.example.com"}, origins)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		origins := parseOrigins(" " + testOrigin + " , https://admin.example.com ")
		assert.Equal(t, []string{testOrigin, "https://admin.example.com"}, origins)
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Nil(t, parseOrigins(""))
	})
}

func TestCORSHeaders(t *testing.T) {
	logger := slog.Default()

	t.Run("headers added when enabled", func(t *testing.T) {
		router := newCORSRouter(createCORSMiddleware(true, testOrigin, logger))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", testOrigin)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("no headers when disabled", func(t *testing.T) {
		router := newCORSRouter(createCORSMiddleware(false, testOrigin, logger))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Origin", testOrigin)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight handled", func(t *testing.T) {
		router := newCORSRouter(createCORSMiddleware(true, testOrigin, logger))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Access-Control-Request-Method", "POST")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})
}
