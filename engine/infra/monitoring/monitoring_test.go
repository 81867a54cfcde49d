package monitoring

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMonitoringService(t *testing.T) {
	t.Run("Should return disabled service when monitoring is off", func(t *testing.T) {
		service, err := NewMonitoringService(context.Background(), DefaultConfig())
		require.NoError(t, err)
		assert.False(t, service.IsInitialized())
		assert.NotNil(t, service.Meter())
		assert.NoError(t, service.Shutdown(context.Background()))
	})
	t.Run("Should initialize exporter when enabled", func(t *testing.T) {
		service, err := NewMonitoringService(context.Background(), &Config{Enabled: true, Path: "/metrics"})
		require.NoError(t, err)
		t.Cleanup(func() { _ = service.Shutdown(context.Background()) })
		assert.True(t, service.IsInitialized())
		assert.NotNil(t, service.exporter)
		assert.NotNil(t, service.provider)
		assert.NoError(t, service.InitializationError())
	})
	t.Run("Should reject invalid path", func(t *testing.T) {
		_, err := NewMonitoringService(context.Background(), &Config{Enabled: true, Path: "metrics"})
		assert.ErrorContains(t, err, "must start with '/'")
	})
	t.Run("Should fall back to disabled service on error", func(t *testing.T) {
		service := NewMonitoringServiceWithFallback(context.Background(), &Config{Enabled: true, Path: ""})
		assert.False(t, service.IsInitialized())
		assert.Error(t, service.InitializationError())
	})
}

func TestService_ExporterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Run("Should expose http and system metrics", func(t *testing.T) {
		ctx := context.Background()
		service, err := NewMonitoringService(ctx, &Config{Enabled: true, Path: "/metrics"})
		require.NoError(t, err)
		t.Cleanup(func() { _ = service.Shutdown(ctx) })
		r := gin.New()
		r.Use(service.GinMiddleware(ctx))
		r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/metrics", gin.WrapH(service.ExporterHandler()))

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)
		body, err := io.ReadAll(w.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "board_http_requests_total")
		assert.Contains(t, string(body), "board_build_info")
		assert.Contains(t, string(body), "board_uptime_seconds")
	})
	t.Run("Should return 503 when not initialized", func(t *testing.T) {
		service, err := NewMonitoringService(context.Background(), nil)
		require.NoError(t, err)
		w := httptest.NewRecorder()
		service.ExporterHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestConfig(t *testing.T) {
	t.Run("Should convert app config", func(t *testing.T) {
		cfg := ConfigFromApp(&config.MonitoringConfig{Enabled: true, Path: "/internal/metrics"})
		assert.True(t, cfg.Enabled)
		assert.Equal(t, "/internal/metrics", cfg.Path)
		assert.NoError(t, cfg.Validate())
	})
	t.Run("Should default nil app config", func(t *testing.T) {
		assert.Equal(t, DefaultConfig(), ConfigFromApp(nil))
	})
	t.Run("Should reject paths that shadow board routes", func(t *testing.T) {
		assert.Error(t, (&Config{Path: "/sections/metrics"}).Validate())
		assert.Error(t, (&Config{Path: "/metrics?x=1"}).Validate())
	})
}
