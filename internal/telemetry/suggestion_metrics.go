package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	suggestionCreatedCounter metric.Int64Counter
	suggestionTrashCounter   metric.Int64Counter

	// Retention sweep metrics
	sweepDeletedCounter metric.Int64Counter
	sweepDuration       metric.Float64Histogram
	sweepErrorCounter   metric.Int64Counter
)

// InitSuggestionMetrics initializes suggestion and sweeper metrics
func InitSuggestionMetrics() error {
	meter := otel.Meter("suggestbox.suggestion")

	var err error

	suggestionCreatedCounter, err = meter.Int64Counter(
		"suggestion.created.count",
		metric.WithDescription("Number of suggestions added"),
		metric.WithUnit("{suggestion}"),
	)
	if err != nil {
		return err
	}

	suggestionTrashCounter, err = meter.Int64Counter(
		"suggestion.trash.count",
		metric.WithDescription("Number of suggestions moved into or out of the trash"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return err
	}

	sweepDeletedCounter, err = meter.Int64Counter(
		"suggestion.sweep.deleted",
		metric.WithDescription("Number of trashed suggestions deleted by the retention sweeper"),
		metric.WithUnit("{suggestion}"),
	)
	if err != nil {
		return err
	}

	sweepDuration, err = meter.Float64Histogram(
		"suggestion.sweep.duration",
		metric.WithDescription("Duration of retention sweeps"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	sweepErrorCounter, err = meter.Int64Counter(
		"suggestion.sweep.errors",
		metric.WithDescription("Number of failed retention sweeps"),
		metric.WithUnit("{error}"),
	)
	return err
}

func RecordSuggestionCreated(ctx context.Context, projectID int64) {
	if suggestionCreatedCounter != nil {
		suggestionCreatedCounter.Add(ctx, 1,
			metric.WithAttributes(attribute.Int64("project_id", projectID)),
		)
	}
}

func RecordSuggestionTrash(ctx context.Context, inTrash bool) {
	if suggestionTrashCounter != nil {
		suggestionTrashCounter.Add(ctx, 1,
			metric.WithAttributes(attribute.Bool("in_trash", inTrash)),
		)
	}
}

// RecordSweep records one sweeper run
func RecordSweep(ctx context.Context, deleted int64, durationMs float64, err error) {
	status := "success"
	if err != nil {
		status = "error"
		if sweepErrorCounter != nil {
			sweepErrorCounter.Add(ctx, 1)
		}
	} else if sweepDeletedCounter != nil {
		sweepDeletedCounter.Add(ctx, deleted)
	}

	if sweepDuration != nil {
		sweepDuration.Record(ctx, durationMs,
			metric.WithAttributes(attribute.String("status", status)),
		)
	}
}
