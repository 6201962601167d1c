package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/repositories"
)

type videoRepository struct {
	db *gorm.DB
}

func NewVideoPostgreSQL(db *gorm.DB) repositories.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *models.Video) error {
	if err := r.db.WithContext(ctx).Create(video).Error; err != nil {
		return fmt.Errorf("create video: %w", err)
	}
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := r.db.WithContext(ctx).First(&video, id).Error; err != nil {
		return nil, fmt.Errorf("get video by id: %w", err)
	}
	return &video, nil
}

func (r *videoRepository) List(ctx context.Context) ([]*models.Video, error) {
	var videos []*models.Video
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&videos).Error; err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

func (r *videoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Video{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete video: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete video: %w", gorm.ErrRecordNotFound)
	}
	return nil
}
