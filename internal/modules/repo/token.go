package repo

import (
	"context"

	"github.com/suggestbox/suggestbox/internal/modules/model"
	"gorm.io/gorm"
)

type TokenRepo interface {
	Create(ctx context.Context, t *model.Token) error
	GetByKey(ctx context.Context, key string) (*model.Token, error)
	ListByProject(ctx context.Context, projectID int64) ([]model.Token, error)
}

type tokenRepo struct{ db *gorm.DB }

func NewTokenRepo(db *gorm.DB) TokenRepo {
	return &tokenRepo{db: db}
}

func (r *tokenRepo) Create(ctx context.Context, t *model.Token) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tokenRepo) GetByKey(ctx context.Context, key string) (*model.Token, error) {
	var t model.Token
	if err := r.db.WithContext(ctx).Where(&model.Token{Key: key}).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tokenRepo) ListByProject(ctx context.Context, projectID int64) ([]model.Token, error) {
	var items []model.Token
	return items, r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id ASC").Find(&items).Error
}
