package model

type Project struct {
	ID                int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerName         string `gorm:"type:varchar(255);not null" json:"ownerName"`
	ProjectName       string `gorm:"type:varchar(255);not null" json:"projectName"`
	LastReadTimestamp int64  `gorm:"not null" json:"lastReadTimestamp"`

	// Project <-> Token
	Tokens []Token `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"tokens,omitempty"`

	// Project <-> Suggestion
	Suggestions []Suggestion `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"suggestions,omitempty"`
}

func (Project) TableName() string { return "projects" }
