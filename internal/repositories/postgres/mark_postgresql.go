package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/repositories"
)

type markRepository struct {
	db *gorm.DB
}

func NewMarkPostgreSQL(db *gorm.DB) repositories.MarkRepository {
	return &markRepository{db: db}
}

func (r *markRepository) Create(ctx context.Context, mark *models.Mark) error {
	if err := r.db.WithContext(ctx).Create(mark).Error; err != nil {
		return fmt.Errorf("create mark: %w", err)
	}
	return nil
}

func (r *markRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Mark, error) {
	var marks []*models.Mark
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_recorded DESC, id DESC").
		Find(&marks).Error
	if err != nil {
		return nil, fmt.Errorf("list marks by user: %w", err)
	}
	return marks, nil
}

func (r *markRepository) ListAll(ctx context.Context) ([]*models.Mark, error) {
	var marks []*models.Mark
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("date_recorded DESC, id DESC").
		Find(&marks).Error
	if err != nil {
		return nil, fmt.Errorf("list all marks: %w", err)
	}
	return marks, nil
}
