package repositories

import (
	"context"

	"github.com/novalearn/student-portal/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIndexNumber(ctx context.Context, indexNumber string) (*models.User, error)

	// MaxIndexNumber returns the numerically greatest allocated index number.
	// found is false when no users exist.
	MaxIndexNumber(ctx context.Context) (max int64, found bool, err error)

	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	Delete(ctx context.Context, id uint) error
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
	ExistsByUserAndCourse(ctx context.Context, userID, courseID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Enrollment, error)
}

type MarkRepository interface {
	Create(ctx context.Context, mark *models.Mark) error

	// ListByUser returns the student's marks ordered by recorded date,
	// newest first.
	ListByUser(ctx context.Context, userID uint) ([]*models.Mark, error)

	// ListAll returns every recorded mark with the student preloaded,
	// newest first.
	ListAll(ctx context.Context) ([]*models.Mark, error)
}

type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id uint) (*models.Video, error)

	// List returns videos newest first.
	List(ctx context.Context) ([]*models.Video, error)
	Delete(ctx context.Context, id uint) error
}
