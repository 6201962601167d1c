package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/novalearn/student-portal/internal/events"
	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/repositories"
	"github.com/novalearn/student-portal/internal/validator"
)

// IndexNumberSeed is issued to the very first registered student.
const IndexNumberSeed = "8374000"

type authService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher

	// indexMu serializes index-number allocation so concurrent registrations
	// cannot read the same maximum. The unique constraint on index_number is
	// the backstop.
	indexMu sync.Mutex
}

func NewAuthService(repo repositories.Repository, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) AuthService {
	return &authService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		publisher: publisher,
	}
}

func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidationFailed, err.Error())
	}

	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	taken, err := s.repo.User().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	birthday, err := time.Parse("2006-01-02", req.Birthday)
	if err != nil {
		return nil, fmt.Errorf("%w: birthday must be an ISO date", ErrValidationFailed)
	}

	user := &models.User{
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    string(hash),
		ExamYear:        req.ExamYear,
		School:          optional(req.School),
		Birthday:        datatypes.Date(birthday),
		GuardianContact: optional(req.GuardianContact),
		WhatsappNumber:  req.WhatsappNumber,
		ProfilePicture:  models.DefaultProfilePicture,
	}

	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	err = s.repo.WithTransaction(ctx, func(tx repositories.Repository) error {
		indexNumber, err := s.nextIndexNumber(ctx, tx)
		if err != nil {
			return err
		}
		user.IndexNumber = indexNumber
		return tx.User().Create(ctx, user)
	})
	if err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, ErrRegistrationConflict
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "index_number", user.IndexNumber)
	s.publish(ctx, events.TypeUserRegistered, map[string]interface{}{
		"user_id":      user.ID,
		"index_number": user.IndexNumber,
		"exam_year":    user.ExamYear,
	})

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, nil
}

// nextIndexNumber returns the seed for an empty portal, otherwise the
// successor of the numeric maximum.
func (s *authService) nextIndexNumber(ctx context.Context, repo repositories.Repository) (string, error) {
	max, found, err := repo.User().MaxIndexNumber(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read last index number: %w", err)
	}
	if !found {
		return IndexNumberSeed, nil
	}
	return strconv.FormatInt(max+1, 10), nil
}

func (s *authService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
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

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
