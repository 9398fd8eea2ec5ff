package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/suggestbox/suggestbox/internal/config"
	"github.com/suggestbox/suggestbox/internal/modules/model"
	"go.uber.org/zap"
)

// MockProjectRepo is a mock implementation of ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Get(ctx context.Context, id int64) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) GetWithRelations(ctx context.Context, id int64, withSuggestions, withTokens bool) (*model.Project, error) {
	args := m.Called(ctx, id, withSuggestions, withTokens)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, id int64, columns map[string]any) error {
	args := m.Called(ctx, id, columns)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id int64) ([]string, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTokenRepo is a mock implementation of TokenRepo
type MockTokenRepo struct {
	mock.Mock
}

func (m *MockTokenRepo) Create(ctx context.Context, t *model.Token) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTokenRepo) GetByKey(ctx context.Context, key string) (*model.Token, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

func (m *MockTokenRepo) ListByProject(ctx context.Context, projectID int64) ([]model.Token, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Token), args.Error(1)
}

// MockSuggestionRepo is a mock implementation of SuggestionRepo
type MockSuggestionRepo struct {
	mock.Mock
}

func (m *MockSuggestionRepo) Create(ctx context.Context, s *model.Suggestion) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSuggestionRepo) GetInProject(ctx context.Context, projectID, id int64) (*model.Suggestion, error) {
	args := m.Called(ctx, projectID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepo) Update(ctx context.Context, id int64, columns map[string]any) error {
	args := m.Called(ctx, id, columns)
	return args.Error(0)
}

func (m *MockSuggestionRepo) ListByProject(ctx context.Context, projectID int64) ([]model.Suggestion, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Suggestion), args.Error(1)
}

func (m *MockSuggestionRepo) DeleteTrashedBefore(ctx context.Context, cutoff int64) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockTokenCache is a mock implementation of TokenCache
type MockTokenCache struct {
	mock.Mock
}

func (m *MockTokenCache) Get(ctx context.Context, key string) (*model.Token, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

func (m *MockTokenCache) Set(ctx context.Context, t *model.Token) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTokenCache) Evict(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, exchangeName string, routingKey string, body any) error {
	args := m.Called(ctx, exchangeName, routingKey, body)
	return args.Error(0)
}

var fixedNow = time.Unix(1_700_000_000, 0)

func fixedClock() time.Time { return fixedNow }

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.RabbitMQ.ExchangeName = "suggestbox.events"
	cfg.RabbitMQ.RoutingKey.SuggestionCreated = "suggestion.created"
	cfg.RabbitMQ.RoutingKey.ProjectDeleted = "project.deleted"
	cfg.RabbitMQ.RoutingKey.SuggestionsSwept = "suggestions.swept"
	return cfg
}

func testLogger() *zap.Logger { return zap.NewNop() }
