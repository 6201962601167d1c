package models

import (
	"time"

	"gorm.io/datatypes"
)

// Mark is a recorded exam score. Immutable once created.
type Mark struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	PaperName    string         `json:"paper_name" gorm:"not null;size:100" validate:"required,max=100"`
	Score        int            `json:"score" gorm:"not null"`
	DateRecorded datatypes.Date `json:"date_recorded"`

	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"user" gorm:"foreignKey:UserID"`
}

func (Mark) TableName() string {
	return "marks"
}
