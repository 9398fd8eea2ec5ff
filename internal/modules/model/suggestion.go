package model

type Suggestion struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID      int64  `gorm:"not null;index:ix_suggestions_project_id" json:"projectId"`
	DisplayName    string `gorm:"type:varchar(255);not null" json:"displayName"`
	SuggestionText string `gorm:"type:varchar(500);not null" json:"suggestionText"`
	// Timestamp is the creation time in unix seconds.
	Timestamp int64 `gorm:"column:timestamp;not null" json:"timestamp"`

	InTrash          bool   `gorm:"not null;default:false" json:"inTrash"`
	TrashedTimestamp *int64 `gorm:"index:ix_suggestions_trashed_timestamp" json:"trashedTimestamp"`

	// Suggestion <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Suggestion) TableName() string { return "suggestions" }
