// internal/common/observability/metrics.go
package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider  *metric.MeterProvider
	meter          otelmetric.Meter
	filterCounter  otelmetric.Int64Counter
	filterDuration otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	filterCounter, _ := meter.Int64Counter(
		"filters.evaluated",
		otelmetric.WithDescription("Number of filter evaluations"),
	)

	filterDuration, _ := meter.Float64Histogram(
		"filters.duration",
		otelmetric.WithDescription("Filter evaluation duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:  provider,
		meter:          meter,
		filterCounter:  filterCounter,
		filterDuration: filterDuration,
	}
}

func (o *Observability) RecordFilterEvaluated(ctx context.Context, view string) {
	if o.filterCounter != nil {
		o.filterCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("view", view),
		))
	}
}

func (o *Observability) RecordFilterDuration(ctx context.Context, duration time.Duration, view string) {
	if o.filterDuration != nil {
		o.filterDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("view", view),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
