package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/repositories"
)

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentPostgreSQL(db *gorm.DB) repositories.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	if err := r.db.WithContext(ctx).Create(enrollment).Error; err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

func (r *enrollmentRepository) ExistsByUserAndCourse(ctx context.Context, userID, courseID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check enrollment exists: %w", err)
	}
	return count > 0, nil
}

func (r *enrollmentRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Order("id").
		Find(&enrollments).Error
	if err != nil {
		return nil, fmt.Errorf("list enrollments by user: %w", err)
	}
	return enrollments, nil
}
