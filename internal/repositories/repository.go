package repositories

import "context"

// Repository aggregates the per-entity repositories.
type Repository interface {
	User() UserRepository
	Course() CourseRepository
	Enrollment() EnrollmentRepository
	Mark() MarkRepository
	Video() VideoRepository

	// WithTransaction runs fn against a transactional view of the repository.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
