package repo

import (
	"context"

	"github.com/suggestbox/suggestbox/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	// Create inserts the project together with its Tokens in one transaction.
	Create(ctx context.Context, p *model.Project) error
	Get(ctx context.Context, id int64) (*model.Project, error)
	// GetWithRelations loads the project and, on request, its suggestions
	// (newest first) and tokens.
	GetWithRelations(ctx context.Context, id int64, withSuggestions, withTokens bool) (*model.Project, error)
	Update(ctx context.Context, id int64, columns map[string]any) error
	// Delete removes the project, its tokens and its suggestions, and returns
	// the keys of the removed tokens.
	Delete(ctx context.Context, id int64) ([]string, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(p).Error
	})
}

func (r *projectRepo) Get(ctx context.Context, id int64) (*model.Project, error) {
	var p model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) GetWithRelations(ctx context.Context, id int64, withSuggestions, withTokens bool) (*model.Project, error) {
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if withSuggestions {
		q = q.Preload("Suggestions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id DESC")
		})
	}
	if withTokens {
		q = q.Preload("Tokens", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		})
	}

	var p model.Project
	if err := q.First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) Update(ctx context.Context, id int64, columns map[string]any) error {
	res := r.db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).Updates(columns)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *projectRepo) Delete(ctx context.Context, id int64) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Token{}).Where("project_id = ?", id).Pluck("key", &keys).Error; err != nil {
			return err
		}
		// Children are removed explicitly so drivers without enforced
		// foreign keys end in the same state.
		if err := tx.Where("project_id = ?", id).Delete(&model.Suggestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Token{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.Project{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
