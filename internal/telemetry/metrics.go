package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/suggestbox/suggestbox/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

var meterProvider *sdkmetric.MeterProvider

func metricInterval(cfg *config.Config) time.Duration {
	if cfg.Telemetry.MetricIntervalSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(cfg.Telemetry.MetricIntervalSec) * time.Second
}

// SetupMetrics pushes the suggestion and sweep instruments to the OTLP
// collector every telemetry.metric_interval_sec. It returns nil when
// telemetry is off, leaving the instruments as no-ops.
func SetupMetrics(cfg *config.Config) (*sdkmetric.MeterProvider, error) {
	if !enabled(cfg) {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), exporterDialTimeout)
	defer cancel()

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	exporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(grpcEndpoint(cfg.Telemetry.OtlpEndpoint)),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("otlp metric exporter: %w", err)
	}

	meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricInterval(cfg)))),
	)
	otel.SetMeterProvider(meterProvider)
	return meterProvider, nil
}

// ShutdownMetrics flushes the last collection.
func ShutdownMetrics(ctx context.Context) error {
	if meterProvider == nil {
		return nil
	}
	return meterProvider.Shutdown(ctx)
}
