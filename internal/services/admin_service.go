package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/novalearn/student-portal/internal/cache"
	"github.com/novalearn/student-portal/internal/events"
	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/repositories"
	"github.com/novalearn/student-portal/internal/utils"
	"github.com/novalearn/student-portal/internal/validator"
)

type adminService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	cache     *cache.CacheHelper
}

func NewAdminService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher, cacheHelper *cache.CacheHelper) AdminService {
	return &adminService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
		cache:     cacheHelper,
	}
}

func (s *adminService) AddCourse(ctx context.Context, req *AddCourseRequest) (*models.Course, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	course := &models.Course{Name: req.Name, Price: req.Price}
	if req.Description != "" {
		course.Description = &req.Description
	}
	if err := s.repo.Course().Create(ctx, course); err != nil {
		return nil, fmt.Errorf("failed to add course: %w", err)
	}

	s.logger.Info("course added", "course_id", course.ID, "name", course.Name)
	s.invalidateCatalog(ctx, catalogCoursesKey)
	return course, nil
}

func (s *adminService) AddMark(ctx context.Context, req *AddMarkRequest) (*models.Mark, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}
	if !utils.ValidIndexNumber(req.IndexNumber) {
		return nil, ErrStudentNotFound
	}

	student, err := s.repo.User().GetByIndexNumber(ctx, req.IndexNumber)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}

	mark := &models.Mark{
		UserID:       student.ID,
		PaperName:    req.PaperName,
		Score:        req.Score,
		DateRecorded: datatypes.Date(time.Now()),
	}
	if err := s.repo.Mark().Create(ctx, mark); err != nil {
		return nil, fmt.Errorf("failed to add mark: %w", err)
	}

	s.logger.Info("mark recorded", "user_id", student.ID, "paper", mark.PaperName, "score", mark.Score)
	s.publish(ctx, events.TypeMarkRecorded, map[string]interface{}{
		"user_id":      student.ID,
		"index_number": student.IndexNumber,
		"paper_name":   mark.PaperName,
		"score":        mark.Score,
	})
	return mark, nil
}

func (s *adminService) AddVideo(ctx context.Context, req *AddVideoRequest) (*models.Video, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}
	if _, ok := utils.EmbedURL(req.Link); !ok {
		return nil, ErrInvalidVideoURL
	}

	video := &models.Video{Title: req.Title, YoutubeLink: req.Link}
	if err := s.repo.Video().Create(ctx, video); err != nil {
		return nil, fmt.Errorf("failed to add video: %w", err)
	}

	s.logger.Info("video added", "video_id", video.ID, "title", video.Title)
	s.invalidateCatalog(ctx, catalogVideosKey)
	return video, nil
}

// EnrollStudent inserts the enrollment unless the pair already exists. The
// pre-check and insert share one transaction. On ErrAlreadyEnrolled the
// result still carries the names so the notice can be phrased.
func (s *adminService) EnrollStudent(ctx context.Context, req *EnrollStudentRequest) (*EnrollmentResult, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}
	if !utils.ValidIndexNumber(req.IndexNumber) {
		return nil, ErrInvalidReference
	}

	student, err := s.repo.User().GetByIndexNumber(ctx, req.IndexNumber)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}

	course, err := s.repo.Course().GetByID(ctx, req.CourseID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("failed to look up course: %w", err)
	}

	result := &EnrollmentResult{StudentName: student.Name, CourseName: course.Name}

	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		exists, err := tx.Enrollment().ExistsByUserAndCourse(ctx, student.ID, course.ID)
		if err != nil {
			return fmt.Errorf("failed to check enrollment: %w", err)
		}
		if exists {
			return ErrAlreadyEnrolled
		}

		enrollment := &models.Enrollment{
			UserID:        student.ID,
			CourseID:      course.ID,
			PaymentStatus: models.PaymentManualActive,
		}
		if err := tx.Enrollment().Create(ctx, enrollment); err != nil {
			return fmt.Errorf("failed to enroll student: %w", err)
		}
		result.Enrollment = enrollment
		return nil
	})
	if err != nil {
		return result, err
	}

	s.logger.Info("student enrolled", "user_id", student.ID, "course_id", course.ID)
	s.publish(ctx, events.TypeEnrollmentCreated, map[string]interface{}{
		"user_id":      student.ID,
		"index_number": student.IndexNumber,
		"course_id":    course.ID,
	})
	return result, nil
}

func (s *adminService) DeleteCourse(ctx context.Context, id uint) error {
	if err := s.repo.Course().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrCourseNotFound
		}
		return fmt.Errorf("failed to delete course: %w", err)
	}

	s.logger.Info("course deleted", "course_id", id)
	s.invalidateCatalog(ctx, catalogCoursesKey)
	return nil
}

func (s *adminService) DeleteVideo(ctx context.Context, id uint) error {
	if err := s.repo.Video().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrVideoNotFound
		}
		return fmt.Errorf("failed to delete video: %w", err)
	}

	s.logger.Info("video deleted", "video_id", id)
	s.invalidateCatalog(ctx, catalogVideosKey)
	return nil
}

func (s *adminService) GetAdminView(ctx context.Context) (*AdminView, error) {
	students, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	courses, err := s.repo.Course().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	videos, err := s.repo.Video().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}

	return &AdminView{Students: students, Courses: courses, Videos: videos}, nil
}

func (s *adminService) invalidateCatalog(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to invalidate catalog cache", "key", key, "error", err)
	}
}

func (s *adminService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	event := events.Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    "student-portal",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish event", "event_type", eventType, "error", err)
	}
}
