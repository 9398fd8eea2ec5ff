package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/suggestbox/suggestbox/internal/config"
	"github.com/suggestbox/suggestbox/internal/modules/model"
	"github.com/suggestbox/suggestbox/internal/modules/repo"
	"github.com/suggestbox/suggestbox/internal/pkg/patch"
	"github.com/suggestbox/suggestbox/internal/pkg/permission"
	"github.com/suggestbox/suggestbox/internal/pkg/rules"
	"github.com/suggestbox/suggestbox/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SuggestionService interface {
	Add(ctx context.Context, t *model.Token, displayName, suggestionText string) (*model.Suggestion, error)
	// Trash and Restore move a suggestion of the token's project into and out of the trash.
	Trash(ctx context.Context, t *model.Token, id int64) (*model.Suggestion, error)
	Restore(ctx context.Context, t *model.Token, id int64) (*model.Suggestion, error)
	Patch(ctx context.Context, t *model.Token, id int64, changes []patch.Change) (*model.Suggestion, error)
}

type suggestionService struct {
	r         repo.SuggestionRepo
	publisher EventPublisher
	cfg       *config.Config
	log       *zap.Logger
	now       func() time.Time
}

func NewSuggestionService(r repo.SuggestionRepo, publisher EventPublisher, cfg *config.Config, log *zap.Logger) SuggestionService {
	return &suggestionService{
		r:         r,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// patchTable stamps trashed_timestamp together with in_trash, using the
// service clock.
func (s *suggestionService) patchTable() patch.Table {
	return patch.Table{
		"inTrash": {
			Column:    "in_trash",
			Requires:  permission.ViewSuggestions,
			Normalize: patch.Bool,
			Also: func(v any) map[string]any {
				if v.(bool) {
					return map[string]any{"trashed_timestamp": s.now().Unix()}
				}
				return map[string]any{"trashed_timestamp": nil}
			},
		},
	}
}

func (s *suggestionService) Add(ctx context.Context, t *model.Token, displayName, suggestionText string) (*model.Suggestion, error) {
	if !permission.Has(t.Permission, permission.AddSuggestions) {
		return nil, forbidden(msgNoPermission)
	}
	if err := rules.ValidateSuggestion(displayName, suggestionText); err != nil {
		return nil, validation(err)
	}

	sg := &model.Suggestion{
		ProjectID:      t.ProjectID,
		DisplayName:    displayName,
		SuggestionText: suggestionText,
		Timestamp:      s.now().Unix(),
		InTrash:        false,
	}
	if err := s.r.Create(ctx, sg); err != nil {
		return nil, fmt.Errorf("create suggestion: %w", err)
	}

	telemetry.RecordSuggestionCreated(ctx, t.ProjectID)
	PublishEvent(ctx, s.publisher, s.cfg.RabbitMQ.ExchangeName, s.cfg.RabbitMQ.RoutingKey.SuggestionCreated,
		SuggestionCreatedEvent{ProjectID: t.ProjectID, SuggestionID: sg.ID, Timestamp: sg.Timestamp}, s.log)
	return sg, nil
}

func (s *suggestionService) Trash(ctx context.Context, t *model.Token, id int64) (*model.Suggestion, error) {
	return s.setTrash(ctx, t, id, true)
}

func (s *suggestionService) Restore(ctx context.Context, t *model.Token, id int64) (*model.Suggestion, error) {
	return s.setTrash(ctx, t, id, false)
}

func (s *suggestionService) setTrash(ctx context.Context, t *model.Token, id int64, inTrash bool) (*model.Suggestion, error) {
	return s.Patch(ctx, t, id, []patch.Change{{Field: "inTrash", Value: inTrash}})
}

func (s *suggestionService) Patch(ctx context.Context, t *model.Token, id int64, changes []patch.Change) (*model.Suggestion, error) {
	if !permission.Has(t.Permission, permission.ViewSuggestions) {
		return nil, forbidden(msgNoPermission)
	}
	if _, err := s.get(ctx, t, id); err != nil {
		return nil, err
	}

	write := func(ctx context.Context, columns map[string]any) error {
		return s.r.Update(ctx, id, columns)
	}
	applied, err := patch.Apply(ctx, s.patchTable(), t.Permission, changes, write)
	if err != nil {
		var denied *patch.DeniedError
		var bad *patch.ValueError
		switch {
		case errors.As(err, &denied):
			return nil, forbidden(denied.Error() + msgPartialPatch)
		case errors.As(err, &bad):
			return nil, validation(bad)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, notFound(msgInvalidSuggestion)
		default:
			return nil, fmt.Errorf("patch suggestion: %w", err)
		}
	}

	sg, err := s.get(ctx, t, id)
	if err != nil {
		return nil, err
	}
	if slices.Contains(applied, "inTrash") {
		telemetry.RecordSuggestionTrash(ctx, sg.InTrash)
	}
	return sg, nil
}

func (s *suggestionService) get(ctx context.Context, t *model.Token, id int64) (*model.Suggestion, error) {
	sg, err := s.r.GetInProject(ctx, t.ProjectID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(msgInvalidSuggestion)
		}
		return nil, fmt.Errorf("get suggestion: %w", err)
	}
	return sg, nil
}
