package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/suggestbox/suggestbox/internal/config"
	"github.com/suggestbox/suggestbox/internal/modules/model"
	"github.com/suggestbox/suggestbox/internal/modules/repo"
	"github.com/suggestbox/suggestbox/internal/pkg/patch"
	"github.com/suggestbox/suggestbox/internal/pkg/permission"
	"github.com/suggestbox/suggestbox/internal/pkg/rules"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ProjectService interface {
	// Create stores a project with its two default tokens (ADMIN, ADD_SUGGESTIONS).
	Create(ctx context.Context, ownerName, projectName string) (*model.Project, error)
	View(ctx context.Context, t *model.Token) (*ProjectView, error)
	Patch(ctx context.Context, t *model.Token, changes []patch.Change) (*ProjectView, error)
	RefreshLastRead(ctx context.Context, t *model.Token) (int64, error)
	Delete(ctx context.Context, t *model.Token) error
}

// ProjectView is a project filtered by what the viewing token may see.
type ProjectView struct {
	Project         *model.Project
	ShowIdentity    bool
	ShowSuggestions bool
	ShowTokens      bool
}

type projectViewJSON struct {
	ID                *int64              `json:"id,omitempty"`
	ProjectName       *string             `json:"projectName,omitempty"`
	OwnerName         *string             `json:"ownerName,omitempty"`
	LastReadTimestamp *int64              `json:"lastReadTimestamp,omitempty"`
	Suggestions       *[]model.Suggestion `json:"suggestions,omitempty"`
	Tokens            *[]model.Token      `json:"tokens,omitempty"`
}

// MarshalJSON omits every field the viewer may not see. Permitted but empty
// lists are rendered as [].
func (v *ProjectView) MarshalJSON() ([]byte, error) {
	out := projectViewJSON{}
	p := v.Project
	if v.ShowIdentity {
		out.ID = &p.ID
		out.ProjectName = &p.ProjectName
		out.OwnerName = &p.OwnerName
	}
	if v.ShowSuggestions {
		out.LastReadTimestamp = &p.LastReadTimestamp
		suggestions := p.Suggestions
		if suggestions == nil {
			suggestions = []model.Suggestion{}
		}
		out.Suggestions = &suggestions
	}
	if v.ShowTokens {
		tokens := p.Tokens
		if tokens == nil {
			tokens = []model.Token{}
		}
		out.Tokens = &tokens
	}
	return sonic.Marshal(out)
}

type projectService struct {
	r         repo.ProjectRepo
	cache     TokenCache
	publisher EventPublisher
	cfg       *config.Config
	log       *zap.Logger
	now       func() time.Time
}

func NewProjectService(r repo.ProjectRepo, cache TokenCache, publisher EventPublisher, cfg *config.Config, log *zap.Logger) ProjectService {
	if cache == nil {
		cache = NopTokenCache{}
	}
	return &projectService{
		r:         r,
		cache:     cache,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

var projectPatchTable = patch.Table{
	"projectName": {
		Column:    "project_name",
		Requires:  permission.Admin,
		Normalize: patch.Text(rules.ProjectName),
	},
	"ownerName": {
		Column:    "owner_name",
		Requires:  permission.Admin,
		Normalize: patch.Text(rules.DisplayName),
	},
	"lastReadTimestamp": {
		Column:    "last_read_timestamp",
		Requires:  permission.ViewSuggestions,
		Normalize: patch.Int64,
	},
}

func (s *projectService) Create(ctx context.Context, ownerName, projectName string) (*model.Project, error) {
	if err := rules.ValidateProject(ownerName, projectName); err != nil {
		return nil, validation(err)
	}

	p := &model.Project{
		OwnerName:         ownerName,
		ProjectName:       projectName,
		LastReadTimestamp: s.now().Unix(),
		Tokens: []model.Token{
			{Permission: permission.Admin},
			{Permission: permission.AddSuggestions},
		},
	}
	if err := s.r.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

func (s *projectService) View(ctx context.Context, t *model.Token) (*ProjectView, error) {
	v := &ProjectView{
		ShowIdentity:    permission.Has(t.Permission, permission.AddSuggestions),
		ShowSuggestions: permission.Has(t.Permission, permission.ViewSuggestions),
		ShowTokens:      permission.Has(t.Permission, permission.ViewTokens),
	}

	p, err := s.r.GetWithRelations(ctx, t.ProjectID, v.ShowSuggestions, v.ShowTokens)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidKey()
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	v.Project = p
	return v, nil
}

func (s *projectService) Patch(ctx context.Context, t *model.Token, changes []patch.Change) (*ProjectView, error) {
	write := func(ctx context.Context, columns map[string]any) error {
		return s.r.Update(ctx, t.ProjectID, columns)
	}

	applied, err := patch.Apply(ctx, projectPatchTable, t.Permission, changes, write)
	if err != nil {
		return nil, s.patchError(err)
	}
	if len(applied) > 0 {
		s.log.Debug("project patched", zap.Int64("project_id", t.ProjectID), zap.Strings("fields", applied))
	}
	return s.View(ctx, t)
}

func (s *projectService) patchError(err error) error {
	var denied *patch.DeniedError
	var bad *patch.ValueError
	switch {
	case errors.As(err, &denied):
		return forbidden(denied.Error() + msgPartialPatch)
	case errors.As(err, &bad):
		return validation(bad)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return invalidKey()
	default:
		return fmt.Errorf("patch project: %w", err)
	}
}

func (s *projectService) RefreshLastRead(ctx context.Context, t *model.Token) (int64, error) {
	if !permission.Has(t.Permission, permission.ViewSuggestions) {
		return 0, forbidden(msgNoPermission)
	}

	ts := s.now().Unix()
	if err := s.r.Update(ctx, t.ProjectID, map[string]any{"last_read_timestamp": ts}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, invalidKey()
		}
		return 0, fmt.Errorf("refresh last read: %w", err)
	}
	return ts, nil
}

func (s *projectService) Delete(ctx context.Context, t *model.Token) error {
	if !permission.Has(t.Permission, permission.Admin) {
		return forbidden(msgAdminRequired)
	}

	keys, err := s.r.Delete(ctx, t.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return invalidKey()
		}
		return fmt.Errorf("delete project: %w", err)
	}

	if err := s.cache.Evict(ctx, keys...); err != nil {
		s.log.Warn("token cache evict failed", zap.Int64("project_id", t.ProjectID), zap.Error(err))
	}

	PublishEvent(ctx, s.publisher, s.cfg.RabbitMQ.ExchangeName, s.cfg.RabbitMQ.RoutingKey.ProjectDeleted,
		ProjectDeletedEvent{ProjectID: t.ProjectID, TokenCount: len(keys)}, s.log)
	return nil
}
