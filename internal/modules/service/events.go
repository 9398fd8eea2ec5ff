package service

import (
	"context"

	"go.uber.org/zap"
)

// PublishEvent is best effort: a broker failure is logged and never fails the caller.
func PublishEvent(ctx context.Context, p EventPublisher, exchange, routingKey string, body any, log *zap.Logger) {
	if p == nil || routingKey == "" {
		return
	}
	if err := p.PublishJSON(ctx, exchange, routingKey, body); err != nil {
		log.Warn("publish event failed",
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
	}
}
