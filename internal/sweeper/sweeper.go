// Package sweeper hard-deletes suggestions that have sat in the trash for
// longer than the retention window.
package sweeper

import (
	"context"
	"time"

	"github.com/suggestbox/suggestbox/internal/config"
	"github.com/suggestbox/suggestbox/internal/modules/repo"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/telemetry"
	"go.uber.org/zap"
)

const (
	DefaultRetention = 432000 * time.Second
	DefaultInterval  = time.Hour
)

type Sweeper struct {
	r         repo.SuggestionRepo
	publisher service.EventPublisher
	cfg       *config.Config
	log       *zap.Logger
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
}

func New(r repo.SuggestionRepo, publisher service.EventPublisher, cfg *config.Config, log *zap.Logger) *Sweeper {
	retention := time.Duration(cfg.Sweeper.RetentionSec) * time.Second
	if retention <= 0 {
		retention = DefaultRetention
	}
	interval := time.Duration(cfg.Sweeper.IntervalSec) * time.Second
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sweeper{
		r:         r,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
		retention: retention,
		interval:  interval,
		now:       time.Now,
	}
}

// RunOnce deletes every suggestion trashed at or before now minus the
// retention window and returns how many rows went.
func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	start := time.Now()
	cutoff := s.now().Add(-s.retention).Unix()

	n, err := s.r.DeleteTrashedBefore(ctx, cutoff)
	telemetry.RecordSweep(ctx, n, float64(time.Since(start).Milliseconds()), err)
	if err != nil {
		return 0, err
	}

	s.log.Info("cleared trashed suggestions", zap.Int64("cleared", n), zap.Int64("cutoff", cutoff))
	if n > 0 {
		service.PublishEvent(ctx, s.publisher, s.cfg.RabbitMQ.ExchangeName, s.cfg.RabbitMQ.RoutingKey.SuggestionsSwept,
			service.SuggestionsSweptEvent{Deleted: n, Cutoff: cutoff}, s.log)
	}
	return n, nil
}

// Run sweeps once immediately and then every interval until ctx is done.
// A failed sweep is logged and retried on the next tick.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
			s.log.Error("sweep failed", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
