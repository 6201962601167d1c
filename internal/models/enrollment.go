package models

import "time"

type PaymentStatus string

const (
	PaymentPending      PaymentStatus = "pending"
	PaymentPaid         PaymentStatus = "paid"
	PaymentManualActive PaymentStatus = "manual_active"
)

// Enrollment links one student to one course. At most one row exists per
// (user, course) pair, enforced by a pre-check before insert.
type Enrollment struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"user_id" gorm:"not null;index"`
	CourseID      uint          `json:"course_id" gorm:"not null;index"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"size:20;default:pending"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User   User   `json:"user" gorm:"foreignKey:UserID"`
	Course Course `json:"course" gorm:"foreignKey:CourseID"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
