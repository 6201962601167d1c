package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/novalearn/student-portal/internal/events"
	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/validator"
)

func validRegisterRequest() *RegisterRequest {
	return &RegisterRequest{
		Name:            "Ama Mensah",
		Email:           "ama@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		ExamYear:        2026,
		School:          "Accra High",
		Birthday:        "2008-03-15",
		WhatsappNumber:  "0241234567",
	}
}

func newAuthFixture() (*fakeRepository, *events.MockEventPublisher, AuthService) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	repo := newFakeRepository()
	publisher := events.NewMockEventPublisher(logger)
	service := NewAuthService(repo, logger, validator.New(), publisher)
	return repo, publisher, service
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("password mismatch", func(t *testing.T) {
		_, _, service := newAuthFixture()

		req := validRegisterRequest()
		req.ConfirmPassword = "different"

		_, err := service.Register(ctx, req)
		if !errors.Is(err, ErrPasswordMismatch) {
			t.Fatalf("expected ErrPasswordMismatch, got %v", err)
		}
	})

	t.Run("email already registered", func(t *testing.T) {
		repo, _, service := newAuthFixture()
		repo.users = append(repo.users, &models.User{ID: 1, Email: "ama@example.com", IndexNumber: "8374000"})

		_, err := service.Register(ctx, validRegisterRequest())
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("first registration gets the seed index number", func(t *testing.T) {
		_, publisher, service := newAuthFixture()

		user, err := service.Register(ctx, validRegisterRequest())
		if err != nil {
			t.Fatalf("register failed: %v", err)
		}

		if user.IndexNumber != IndexNumberSeed {
			t.Errorf("expected index number %s, got %s", IndexNumberSeed, user.IndexNumber)
		}
		if user.ProfilePicture != models.DefaultProfilePicture {
			t.Errorf("expected default profile picture, got %s", user.ProfilePicture)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")); err != nil {
			t.Error("stored password hash does not match the password")
		}

		published := publisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("expected 1 event, got %d", len(published))
		}
		if published[0].Type != events.TypeUserRegistered {
			t.Errorf("expected event type %s, got %s", events.TypeUserRegistered, published[0].Type)
		}
	})

	t.Run("subsequent registration increments the maximum", func(t *testing.T) {
		repo, _, service := newAuthFixture()
		repo.users = append(repo.users,
			&models.User{ID: 1, Email: "a@example.com", IndexNumber: "8374000"},
			&models.User{ID: 2, Email: "b@example.com", IndexNumber: "8374005"},
		)

		user, err := service.Register(ctx, validRegisterRequest())
		if err != nil {
			t.Fatalf("register failed: %v", err)
		}
		if user.IndexNumber != "8374006" {
			t.Errorf("expected index number 8374006, got %s", user.IndexNumber)
		}
	})

	t.Run("duplicate insert reports a conflict", func(t *testing.T) {
		repo, _, service := newAuthFixture()
		repo.userCreateErr = gorm.ErrDuplicatedKey

		_, err := service.Register(ctx, validRegisterRequest())
		if !errors.Is(err, ErrRegistrationConflict) {
			t.Fatalf("expected ErrRegistrationConflict, got %v", err)
		}
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		_, _, service := newAuthFixture()

		req := validRegisterRequest()
		req.Email = "not-an-email"

		_, err := service.Register(ctx, req)
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	repo, _, service := newAuthFixture()
	repo.users = append(repo.users, &models.User{
		ID:           1,
		Email:        "ama@example.com",
		PasswordHash: string(hash),
		IndexNumber:  "8374000",
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(ctx, "nobody@example.com", "secret123")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, "ama@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("valid credentials", func(t *testing.T) {
		user, err := service.Login(ctx, "ama@example.com", "secret123")
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if user.ID != 1 {
			t.Errorf("expected user 1, got %d", user.ID)
		}
	})
}
