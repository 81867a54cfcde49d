package ratelimit

import (
	"context"
	"sync"

	monitoringmetrics "github.com/reikouwu/House-Liber-Arce/engine/infra/monitoring/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	rateLimitBlocksTotal metric.Int64Counter
	metricsOnce          sync.Once
)

// InitMetrics creates the blocked-requests counter on meter. Only the first
// call has an effect.
func InitMetrics(meter metric.Meter) error {
	var err error
	metricsOnce.Do(func() {
		rateLimitBlocksTotal, err = meter.Int64Counter(
			monitoringmetrics.MetricName("rate_limit_blocks_total"),
			metric.WithDescription("Total number of requests blocked by rate limiting"),
			metric.WithUnit("1"),
		)
	})
	return err
}

// IncrementBlockedRequests increments the rate_limit_blocks_total counter
func IncrementBlockedRequests(ctx context.Context, route string) {
	if rateLimitBlocksTotal != nil {
		rateLimitBlocksTotal.Add(ctx, 1,
			metric.WithAttributes(attribute.String("route", route)),
		)
	}
}
