package models

import "time"

type Course struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Description *string `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"not null" validate:"min=0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Reverse reference; enrollment rows are kept when the course is deleted.
	Enrollments []Enrollment `json:"enrollments" gorm:"foreignKey:CourseID"`
}

func (Course) TableName() string {
	return "courses"
}
