package service

import (
	"context"

	"github.com/suggestbox/suggestbox/internal/modules/model"
)

// TokenCache fronts token lookups by key. A miss is (nil, nil).
type TokenCache interface {
	Get(ctx context.Context, key string) (*model.Token, error)
	Set(ctx context.Context, t *model.Token) error
	Evict(ctx context.Context, keys ...string) error
}

// NopTokenCache is used when no cache is configured.
type NopTokenCache struct{}

func (NopTokenCache) Get(context.Context, string) (*model.Token, error) { return nil, nil }
func (NopTokenCache) Set(context.Context, *model.Token) error           { return nil }
func (NopTokenCache) Evict(context.Context, ...string) error            { return nil }

// EventPublisher is satisfied by *mq.Publisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, exchangeName string, routingKey string, body any) error
}

type SuggestionCreatedEvent struct {
	ProjectID    int64 `json:"project_id"`
	SuggestionID int64 `json:"suggestion_id"`
	Timestamp    int64 `json:"timestamp"`
}

type ProjectDeletedEvent struct {
	ProjectID  int64 `json:"project_id"`
	TokenCount int   `json:"token_count"`
}

type SuggestionsSweptEvent struct {
	Deleted int64 `json:"deleted"`
	Cutoff  int64 `json:"cutoff"`
}
