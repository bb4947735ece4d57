package token

import (
	"context"
	"fmt"
	"taxtoken/pkg/metrics"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type instruments struct {
	calls         metric.Float64Histogram
	taxCollected  metric.Float64Counter
	distributions metric.Int64Counter
}

func newInstruments(meter metric.Meter) (*instruments, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter(metrics.MeterName)
	}

	calls, err := meter.Float64Histogram("taxtoken.call.duration",
		metric.WithDescription("Duration of state-changing token calls."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create call histogram: %w", err)
	}

	taxCollected, err := meter.Float64Counter("taxtoken.tax.collected",
		metric.WithDescription("Tokens collected as tax, in human units."))
	if err != nil {
		return nil, fmt.Errorf("could not create tax counter: %w", err)
	}

	distributions, err := meter.Int64Counter("taxtoken.distributions",
		metric.WithDescription("Distribution cycles by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create distribution counter: %w", err)
	}

	return &instruments{
		calls:         calls,
		taxCollected:  taxCollected,
		distributions: distributions,
	}, nil
}

func outcome(err error) string {
	if err != nil {
		return "rolled_back"
	}

	return "committed"
}

func (i *instruments) observeCall(ctx context.Context, op string, took time.Duration, err error) {
	i.calls.Record(ctx, took.Seconds(), metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", outcome(err))))
}

func (i *instruments) addTax(ctx context.Context, tax taxRecord, decimals uint8) {
	if tax.amount.IsZero() {
		return
	}

	i.taxCollected.Add(ctx, tax.amount.Decimal(decimals).InexactFloat64(), metric.WithAttributes(
		attribute.String("direction", tax.direction),
		attribute.String("category", tax.category)))
}

func (i *instruments) addDistribution(ctx context.Context, ok bool) {
	result := "completed"
	if !ok {
		result = "failed"
	}

	i.distributions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
