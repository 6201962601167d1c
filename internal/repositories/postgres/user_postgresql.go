package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/repositories"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserPostgreSQL(db *gorm.DB) repositories.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByIndexNumber(ctx context.Context, indexNumber string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("index_number = ?", indexNumber).First(&user).Error; err != nil {
		return nil, fmt.Errorf("get user by index number: %w", err)
	}
	return &user, nil
}

// MaxIndexNumber compares index numbers numerically so the successor logic
// cannot disagree with string ordering if widths ever diverge.
func (r *userRepository) MaxIndexNumber(ctx context.Context) (int64, bool, error) {
	var max *int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("MAX(CAST(index_number AS BIGINT))").
		Scan(&max).Error
	if err != nil {
		return 0, false, fmt.Errorf("max index number: %w", err)
	}
	if max == nil {
		return 0, false, nil
	}
	return *max, true, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := r.db.WithContext(ctx).Order("index_number").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}
	return count > 0, nil
}
