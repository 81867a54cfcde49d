package monitoring

import (
	"context"
	"time"

	monitoringmetrics "github.com/reikouwu/House-Liber-Arce/engine/infra/monitoring/metrics"
	"github.com/reikouwu/House-Liber-Arce/pkg/version"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// initSystemMetrics registers build information and process uptime on meter.
func initSystemMetrics(meter metric.Meter, started time.Time) (metric.Registration, error) {
	info := version.Get()
	buildInfo, err := meter.Int64ObservableGauge(
		monitoringmetrics.MetricName("build_info"),
		metric.WithDescription("Build information for the board service"),
	)
	if err != nil {
		return nil, err
	}
	uptime, err := meter.Float64ObservableGauge(
		monitoringmetrics.MetricName("uptime_seconds"),
		metric.WithDescription("Time since service start"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	attrs := metric.WithAttributes(
		attribute.String("version", info.Version),
		attribute.String("commit_hash", info.CommitHash),
		attribute.String("go_version", info.GoVersion),
	)
	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(buildInfo, 1, attrs)
		o.ObserveFloat64(uptime, time.Since(started).Seconds())
		return nil
	}, buildInfo, uptime)
}
