package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/suggestbox/suggestbox/internal/middleware"
	"github.com/suggestbox/suggestbox/internal/modules/model"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/pkg/patch"
	"github.com/suggestbox/suggestbox/internal/pkg/permission"
)

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, ownerName, projectName string) (*model.Project, error) {
	args := m.Called(ctx, ownerName, projectName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) View(ctx context.Context, t *model.Token) (*service.ProjectView, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectView), args.Error(1)
}

func (m *MockProjectService) Patch(ctx context.Context, t *model.Token, changes []patch.Change) (*service.ProjectView, error) {
	args := m.Called(ctx, t, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectView), args.Error(1)
}

func (m *MockProjectService) RefreshLastRead(ctx context.Context, t *model.Token) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, t *model.Token) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// MockSuggestionService is a mock implementation of SuggestionService
type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) Add(ctx context.Context, t *model.Token, displayName, suggestionText string) (*model.Suggestion, error) {
	args := m.Called(ctx, t, displayName, suggestionText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) Trash(ctx context.Context, t *model.Token, id int64) (*model.Suggestion, error) {
	args := m.Called(ctx, t, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) Restore(ctx context.Context, t *model.Token, id int64) (*model.Suggestion, error) {
	args := m.Called(ctx, t, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) Patch(ctx context.Context, t *model.Token, id int64, changes []patch.Change) (*model.Suggestion, error) {
	args := m.Called(ctx, t, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Suggestion), args.Error(1)
}

// MockTokenService is a mock implementation of TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Authenticate(ctx context.Context, key string) (*model.Token, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

func (m *MockTokenService) Issue(ctx context.Context, caller *model.Token, perm permission.Permission) (*model.Token, error) {
	args := m.Called(ctx, caller, perm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Token), args.Error(1)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// withToken stands in for TokenAuth in handler tests.
func withToken(t *model.Token, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.TokenKey, t)
		h(c)
	}
}
