package models

import (
	"time"

	"gorm.io/datatypes"
)

// DefaultProfilePicture is used until a student uploads their own picture.
const DefaultProfilePicture = "default.jpg"

type User struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	IndexNumber string `json:"index_number" gorm:"uniqueIndex;not null;size:10"`
	Name        string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Email       string `json:"email" gorm:"uniqueIndex;not null;size:100" validate:"required,email,max=100"`

	// PasswordHash is a bcrypt hash, never the raw password.
	PasswordHash string `json:"-" gorm:"column:password;not null;size:200"`

	ExamYear        int            `json:"exam_year" gorm:"not null"`
	School          *string        `json:"school" gorm:"size:150"`
	Birthday        datatypes.Date `json:"birthday" gorm:"not null"`
	GuardianContact *string        `json:"guardian_contact" gorm:"size:15"`
	WhatsappNumber  string         `json:"whatsapp_number" gorm:"not null;size:15"`
	ProfilePicture  string         `json:"profile_picture" gorm:"size:100;default:default.jpg"`
	IsAdmin         bool           `json:"is_admin" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Enrollments []Enrollment `json:"enrollments" gorm:"foreignKey:UserID"`
	Marks       []Mark       `json:"marks" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

// IsBirthday reports whether the user's birthday falls on the given day,
// ignoring the year.
func (u *User) IsBirthday(today time.Time) bool {
	b := time.Time(u.Birthday)
	return b.Month() == today.Month() && b.Day() == today.Day()
}
