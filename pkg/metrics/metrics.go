// Package metrics holds the shared OpenTelemetry setup. Instruments are
// exported through the Prometheus default registerer and served by promhttp.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/otlptranslator"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MeterName is the instrumentation scope of every taxtoken instrument.
const MeterName = "taxtoken"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// NewMeterProvider creates a meter provider that exports to registerer.
// A nil registerer means prometheus.DefaultRegisterer. Instrument names are
// exported in classic Prometheus form: dots become underscores and unit and
// counter suffixes are appended.
func NewMeterProvider(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	exp, err := otelprom.New(
		otelprom.WithRegisterer(registerer),
		otelprom.WithTranslationStrategy(otlptranslator.UnderscoreEscapingWithSuffixes),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Meter returns the taxtoken meter of mp.
func Meter(mp metric.MeterProvider) metric.Meter {
	return mp.Meter(MeterName)
}
