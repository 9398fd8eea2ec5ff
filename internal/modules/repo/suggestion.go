package repo

import (
	"context"

	"github.com/suggestbox/suggestbox/internal/modules/model"
	"gorm.io/gorm"
)

type SuggestionRepo interface {
	Create(ctx context.Context, s *model.Suggestion) error
	// GetInProject returns gorm.ErrRecordNotFound when the suggestion does not
	// exist or belongs to another project.
	GetInProject(ctx context.Context, projectID, id int64) (*model.Suggestion, error)
	Update(ctx context.Context, id int64, columns map[string]any) error
	ListByProject(ctx context.Context, projectID int64) ([]model.Suggestion, error)
	// DeleteTrashedBefore hard-deletes trashed suggestions whose trash time is
	// at or before cutoff (unix seconds) and returns how many were removed.
	DeleteTrashedBefore(ctx context.Context, cutoff int64) (int64, error)
}

type suggestionRepo struct{ db *gorm.DB }

func NewSuggestionRepo(db *gorm.DB) SuggestionRepo {
	return &suggestionRepo{db: db}
}

func (r *suggestionRepo) Create(ctx context.Context, s *model.Suggestion) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *suggestionRepo) GetInProject(ctx context.Context, projectID, id int64) (*model.Suggestion, error) {
	var s model.Suggestion
	err := r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", id, projectID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *suggestionRepo) Update(ctx context.Context, id int64, columns map[string]any) error {
	res := r.db.WithContext(ctx).Model(&model.Suggestion{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *suggestionRepo) ListByProject(ctx context.Context, projectID int64) ([]model.Suggestion, error) {
	var items []model.Suggestion
	return items, r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id DESC").Find(&items).Error
}

func (r *suggestionRepo) DeleteTrashedBefore(ctx context.Context, cutoff int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("in_trash = ? AND trashed_timestamp IS NOT NULL AND trashed_timestamp <= ?", true, cutoff).
		Delete(&model.Suggestion{})
	return res.RowsAffected, res.Error
}
