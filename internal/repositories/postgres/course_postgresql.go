package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/repositories"
)

type courseRepository struct {
	db *gorm.DB
}

func NewCoursePostgreSQL(db *gorm.DB) repositories.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	if err := r.db.WithContext(ctx).Create(course).Error; err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

func (r *courseRepository) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, fmt.Errorf("get course by id: %w", err)
	}
	return &course, nil
}

func (r *courseRepository) List(ctx context.Context) ([]*models.Course, error) {
	var courses []*models.Course
	if err := r.db.WithContext(ctx).Order("id").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Delete removes the course row only; enrollments referencing it survive.
func (r *courseRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Course{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete course: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete course: %w", gorm.ErrRecordNotFound)
	}
	return nil
}
