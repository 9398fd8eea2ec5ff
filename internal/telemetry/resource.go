package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/suggestbox/suggestbox/internal/config"
	"github.com/suggestbox/suggestbox/internal/version"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const exporterDialTimeout = 5 * time.Second

func enabled(cfg *config.Config) bool {
	return cfg.Telemetry.Enabled && cfg.Telemetry.OtlpEndpoint != ""
}

// serviceAttributes describe this deployment: which store backs it and which
// optional surfaces are switched on.
func serviceAttributes(cfg *config.Config) []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.ServiceName(cfg.App.Name),
		semconv.ServiceVersion(version.Version),
		semconv.DeploymentEnvironment(cfg.App.Env),
		attribute.String("suggestbox.commit", version.Commit),
		attribute.String("suggestbox.db.driver", cfg.Database.Driver),
		attribute.Bool("suggestbox.graphql.enabled", cfg.GraphQL.Enabled),
		attribute.Bool("suggestbox.sweeper.enabled", cfg.Sweeper.Enabled),
		attribute.Int64("suggestbox.sweeper.retention_sec", cfg.Sweeper.RetentionSec),
	}
}

// newResource is shared by the trace and metric providers. OTEL_RESOURCE_ATTRIBUTES
// is merged in, with the attributes above taking precedence.
func newResource(ctx context.Context, cfg *config.Config) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithHost(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(serviceAttributes(cfg)...),
	)
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}
	return res, nil
}

// sampler keeps the caller's sampling decision and samples new traces at
// ratio. Ratios outside (0, 1) mean sample everything.
func sampler(ratio float64) sdktrace.Sampler {
	root := sdktrace.AlwaysSample()
	if ratio > 0 && ratio < 1 {
		root = sdktrace.TraceIDRatioBased(ratio)
	}
	return sdktrace.ParentBased(root)
}

// grpcEndpoint strips a URL scheme; the OTLP gRPC exporters want host:port.
func grpcEndpoint(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return strings.TrimPrefix(endpoint, "https://")
}
