package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/suggestbox/suggestbox/internal/pkg/permission"
)

type Token struct {
	ID         int64                 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID  int64                 `gorm:"not null;index:ix_tokens_project_id" json:"projectId"`
	Key        string                `gorm:"column:key;type:varchar(255);not null;uniqueIndex" json:"key"`
	Permission permission.Permission `gorm:"type:varchar(255);not null" json:"permission"`

	// Token <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Token) TableName() string { return "tokens" }

// BeforeCreate issues the opaque key. Keys are never changed afterwards.
func (t *Token) BeforeCreate(tx *gorm.DB) error {
	if t.Key == "" {
		t.Key = uuid.NewString()
	}
	return nil
}

