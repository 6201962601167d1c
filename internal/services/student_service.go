package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/repositories"
	"github.com/novalearn/student-portal/internal/utils"
	"github.com/novalearn/student-portal/internal/validator"
)

type studentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	uploadDir string
}

func NewStudentService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, uploadDir string) StudentService {
	return &studentService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		uploadDir: uploadDir,
	}
}

func (s *studentService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.repo.User().GetByID(ctx, id)
}

// BuildDashboard assembles the dashboard view. Marks are listed newest
// first; the chart slices are the same marks oldest first so the chart
// reads left to right chronologically.
func (s *studentService) BuildDashboard(ctx context.Context, user *models.User, today time.Time) (*DashboardView, error) {
	view := &DashboardView{}

	if user.IsBirthday(today) {
		view.Wish = fmt.Sprintf("Happy Birthday, %s! 🎉", user.Name)
	}

	marks, err := s.repo.Mark().ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load marks: %w", err)
	}
	view.Marks = marks

	view.ChartLabels = make([]string, 0, len(marks))
	view.ChartData = make([]int, 0, len(marks))
	for i := len(marks) - 1; i >= 0; i-- {
		view.ChartLabels = append(view.ChartLabels, marks[i].PaperName)
		view.ChartData = append(view.ChartData, marks[i].Score)
	}

	enrollments, err := s.repo.Enrollment().ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load enrollments: %w", err)
	}
	view.Enrollments = enrollments

	return view, nil
}

// UpdateProfile overwrites the editable fields and, when a non-empty upload
// is present, stores the picture and repoints the profile reference. All
// changes commit in one transaction.
func (s *studentService) UpdateProfile(ctx context.Context, userID uint, req *ProfileUpdateRequest, upload *ProfileUpload) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	var updated *models.User
	err := s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		user, err := tx.User().GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}

		user.Name = req.Name
		user.Email = req.Email
		user.School = optional(req.School)
		user.ExamYear = req.ExamYear
		user.WhatsappNumber = req.WhatsappNumber
		user.GuardianContact = optional(req.GuardianContact)

		if upload != nil && upload.Filename != "" {
			filename, err := s.storePicture(user.IndexNumber, upload)
			if err != nil {
				return err
			}
			user.ProfilePicture = filename
		}

		if err := tx.User().Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", userID)
	return updated, nil
}

// storePicture writes the upload as <indexNumber>_<sanitizedName> under the
// upload directory, creating the directory if missing. A later upload with
// the same derived name overwrites the earlier file.
func (s *studentService) storePicture(indexNumber string, upload *ProfileUpload) (string, error) {
	sanitized := utils.SanitizeFilename(upload.Filename)
	if sanitized == "" {
		return "", fmt.Errorf("%w: unusable picture filename", ErrValidationFailed)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s", indexNumber, sanitized)
	if err := upload.Save(filepath.Join(s.uploadDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save profile picture: %w", err)
	}
	return filename, nil
}
