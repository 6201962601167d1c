package models

import "time"

// Video is an instructional resource. The raw YouTube link is stored and the
// embeddable form is derived on read.
type Video struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null;size:200" validate:"required,max=200"`
	YoutubeLink string `json:"youtube_link" gorm:"not null;size:200" validate:"required,max=200"`

	CreatedAt time.Time `json:"created_at"`
}

func (Video) TableName() string {
	return "videos"
}
