// Package monitoring wires OpenTelemetry metrics to a Prometheus scrape endpoint.
package monitoring

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/monitoring/middleware"
	"github.com/reikouwu/House-Liber-Arce/pkg/logger"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "board"

type Service struct {
	meter             metric.Meter
	exporter          *otelprom.Exporter
	provider          *sdkmetric.MeterProvider
	registry          *prometheus.Registry
	systemMetrics     metric.Registration
	config            *Config
	initialized       bool
	initializationErr error
}

func newDisabledService(cfg *Config, initErr error) *Service {
	return &Service{
		meter:             noop.NewMeterProvider().Meter(meterName),
		config:            cfg,
		initialized:       false,
		initializationErr: initErr,
	}
}

// NewMonitoringService builds the metrics pipeline. A disabled config yields a
// service backed by a no-op meter.
func NewMonitoringService(ctx context.Context, cfg *Config) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if !cfg.Enabled {
		return newDisabledService(cfg, nil), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid monitoring config: %w", err)
	}
	registry := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	meter := provider.Meter(meterName)
	systemMetrics, err := initSystemMetrics(meter, time.Now())
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, fmt.Errorf("failed to register system metrics: %w", err)
	}
	logger.FromContext(ctx).Info("Monitoring service initialized", "path", cfg.Path)
	return &Service{
		meter:         meter,
		exporter:      exporter,
		provider:      provider,
		registry:      registry,
		systemMetrics: systemMetrics,
		config:        cfg,
		initialized:   true,
	}, nil
}

// NewMonitoringServiceWithFallback never fails: initialization errors are
// logged and a disabled service is returned instead.
func NewMonitoringServiceWithFallback(ctx context.Context, cfg *Config) *Service {
	service, err := NewMonitoringService(ctx, cfg)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to initialize monitoring, metrics disabled", "error", err)
		return newDisabledService(cfg, err)
	}
	return service
}

func (s *Service) Meter() metric.Meter {
	return s.meter
}

func (s *Service) Config() *Config {
	return s.config
}

// GinMiddleware returns request metrics middleware, or a pass-through when
// monitoring is off.
func (s *Service) GinMiddleware(ctx context.Context) gin.HandlerFunc {
	if !s.initialized {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.HTTPMetrics(ctx, s.meter)
}

// ExporterHandler serves the Prometheus text format.
func (s *Service) ExporterHandler() http.Handler {
	if !s.initialized || s.registry == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "monitoring not initialized", http.StatusServiceUnavailable)
		})
	}
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// SetAsGlobal installs the provider as the process-wide meter provider so
// packages that use otel.Meter report through this exporter.
func (s *Service) SetAsGlobal() {
	if s.provider == nil {
		return
	}
	otel.SetMeterProvider(s.provider)
}

func (s *Service) IsInitialized() bool {
	return s.initialized
}

func (s *Service) InitializationError() error {
	return s.initializationErr
}

func (s *Service) Shutdown(ctx context.Context) error {
	if s.provider == nil {
		return nil
	}
	var errs []error
	if s.systemMetrics != nil {
		if err := s.systemMetrics.Unregister(); err != nil {
			errs = append(errs, fmt.Errorf("failed to unregister system metrics: %w", err))
		}
	}
	if err := s.provider.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown meter provider: %w", err))
	}
	return errors.Join(errs...)
}
