package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success_RecordHTTPMetrics", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		middleware := HTTPMetricsMiddleware(provider.MeterProvider(), "test_app")

		router := gin.New()
		router.Use(middleware)
		router.GET("/test", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Success_RecordWithPathParams", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		middleware := HTTPMetricsMiddleware(provider.MeterProvider(), "test_app")

		router := gin.New()
		router.Use(middleware)
		router.GET("/v1/integrations/:id", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
		})

		// Requests with different path params should use the route pattern
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/integrations/123", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/v1/integrations/456", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Success_WebhookSecretNeverALabel", func(t *testing.T) {
		provider, err := NewProvider("test_app")
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, provider.Shutdown(context.Background()))
		}()

		middleware := HTTPMetricsMiddleware(provider.MeterProvider(), "test_app")

		router := gin.New()
		router.Use(middleware)
		router.POST("/webhooks/:platform/:id/:secret", func(c *gin.Context) {
			c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/slack/abc/SuperSecretValue123", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusAccepted, w.Code)

		// Exported metrics carry the route pattern, not the secret
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
		provider.Handler().ServeHTTP(w, req)

		output := w.Body.String()
		assert.Contains(t, output, "/webhooks/:platform/:id/:secret")
		assert.NotContains(t, output, "SuperSecretValue123")
	})
}

func TestRoutePattern(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "RoutePattern",
			input:    "/v1/integrations/:id",
			expected: "/v1/integrations/:id",
		},
		{
			name:     "EmptyPath",
			input:    "",
			expected: "unknown",
		},
		{
			name:     "RootPath",
			input:    "/",
			expected: "/",
		},
		{
			name:     "WildcardPath",
			input:    "/webhooks/*path",
			expected: "/webhooks/*path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := routePattern(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
