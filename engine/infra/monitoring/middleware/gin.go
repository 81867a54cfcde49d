package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	monitoringmetrics "github.com/reikouwu/House-Liber-Arce/engine/infra/monitoring/metrics"
	"github.com/reikouwu/House-Liber-Arce/pkg/logger"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type httpInstruments struct {
	requestsTotal    metric.Int64Counter
	requestDuration  metric.Float64Histogram
	requestsInFlight metric.Int64UpDownCounter
}

func newHTTPInstruments(meter metric.Meter) (*httpInstruments, error) {
	requestsTotal, err := meter.Int64Counter(
		monitoringmetrics.MetricNameWithSubsystem("http", "requests_total"),
		metric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}
	requestDuration, err := meter.Float64Histogram(
		monitoringmetrics.MetricNameWithSubsystem("http", "request_duration_seconds"),
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(monitoringmetrics.HTTPDurationBuckets...),
	)
	if err != nil {
		return nil, err
	}
	requestsInFlight, err := meter.Int64UpDownCounter(
		monitoringmetrics.MetricNameWithSubsystem("http", "requests_in_flight"),
		metric.WithDescription("Currently active HTTP requests"),
	)
	if err != nil {
		return nil, err
	}
	return &httpInstruments{
		requestsTotal:    requestsTotal,
		requestDuration:  requestDuration,
		requestsInFlight: requestsInFlight,
	}, nil
}

// HTTPMetrics returns a Gin middleware that collects HTTP metrics on meter.
// When the instruments cannot be created it logs and passes requests through.
func HTTPMetrics(ctx context.Context, meter metric.Meter) gin.HandlerFunc {
	instruments, err := newHTTPInstruments(meter)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to create HTTP metrics instruments", "error", err)
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		reqCtx := c.Request.Context()
		instruments.requestsInFlight.Add(reqCtx, 1)
		defer instruments.requestsInFlight.Add(reqCtx, -1)
		c.Next()
		instruments.record(c, start)
	}
}

func (m *httpInstruments) record(c *gin.Context, start time.Time) {
	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	attrs := metric.WithAttributes(
		attribute.String("method", c.Request.Method),
		attribute.String("path", path),
		attribute.String("status_code", strconv.Itoa(c.Writer.Status())),
	)
	m.requestsTotal.Add(c.Request.Context(), 1, attrs)
	m.requestDuration.Record(c.Request.Context(), time.Since(start).Seconds(), attrs)
}
