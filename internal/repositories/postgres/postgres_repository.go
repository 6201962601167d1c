package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/novalearn/student-portal/internal/repositories"
)

// PostgreSQLRepository implements the aggregate Repository interface.
type PostgreSQLRepository struct {
	db *gorm.DB

	user       repositories.UserRepository
	course     repositories.CourseRepository
	enrollment repositories.EnrollmentRepository
	mark       repositories.MarkRepository
	video      repositories.VideoRepository
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	DB *gorm.DB
}

// NewPostgreSQLRepository creates the repository aggregate with all
// sub-repositories bound to the given connection.
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	return newWithDB(config.DB)
}

func newWithDB(db *gorm.DB) *PostgreSQLRepository {
	return &PostgreSQLRepository{
		db:         db,
		user:       NewUserPostgreSQL(db),
		course:     NewCoursePostgreSQL(db),
		enrollment: NewEnrollmentPostgreSQL(db),
		mark:       NewMarkPostgreSQL(db),
		video:      NewVideoPostgreSQL(db),
	}
}

func (r *PostgreSQLRepository) User() repositories.UserRepository             { return r.user }
func (r *PostgreSQLRepository) Course() repositories.CourseRepository         { return r.course }
func (r *PostgreSQLRepository) Enrollment() repositories.EnrollmentRepository { return r.enrollment }
func (r *PostgreSQLRepository) Mark() repositories.MarkRepository             { return r.mark }
func (r *PostgreSQLRepository) Video() repositories.VideoRepository           { return r.video }

// WithTransaction executes fn within a database transaction; every repository
// reached through the passed aggregate uses the transaction connection.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newWithDB(tx))
	})
}

func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

// RepositoryManager implements the RepositoryManager interface.
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &RepositoryManager{config: config}
}

// Initialize verifies the database connection and builds the aggregate.
func (rm *RepositoryManager) Initialize() error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	sqlDB, err := rm.config.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	rm.repo = NewPostgreSQLRepository(rm.config)
	return nil
}

func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}

func (rm *RepositoryManager) HealthCheck(ctx context.Context) error {
	if rm.repo == nil {
		return fmt.Errorf("repository not initialized")
	}
	return rm.repo.Ping(ctx)
}

func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.repo == nil {
		return nil
	}
	return rm.repo.Close()
}
