package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/novalearn/student-portal/internal/cache"
	"github.com/novalearn/student-portal/internal/events"
	"github.com/novalearn/student-portal/internal/repositories"
	"github.com/novalearn/student-portal/internal/validator"
)

// ServiceManagerConfig holds the dependencies shared by all services.
type ServiceManagerConfig struct {
	Repo      repositories.Repository
	Logger    *slog.Logger
	Validator *validator.Validator
	Publisher events.EventPublisher
	Cache     *cache.CacheHelper
	UploadDir string
}

type serviceManager struct {
	config ServiceManagerConfig

	authService    AuthService
	studentService StudentService
	adminService   AdminService
	catalogService CatalogService
	exportService  ExportService

	initialized bool
	mu          sync.RWMutex
}

func NewServiceManager(config ServiceManagerConfig) ServiceManager {
	return &serviceManager{config: config}
}

// Initialize builds all services. Idempotent.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if sm.config.Repo == nil {
		return fmt.Errorf("repository is required")
	}

	logger := sm.config.Logger

	sm.authService = NewAuthService(sm.config.Repo, logger, sm.config.Validator, sm.config.Publisher)
	sm.studentService = NewStudentService(sm.config.Repo, logger, sm.config.Validator, sm.config.UploadDir)
	sm.adminService = NewAdminService(sm.config.Repo, logger, sm.config.Validator, sm.config.Publisher, sm.config.Cache)
	sm.catalogService = NewCatalogService(sm.config.Repo, logger, sm.config.Cache)
	sm.exportService = NewExportService(sm.config.Repo, logger)

	sm.initialized = true
	logger.Info("service manager initialized")
	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}
	sm.initialized = false

	if sm.config.Publisher != nil {
		if err := sm.config.Publisher.Close(); err != nil {
			return fmt.Errorf("failed to close event publisher: %w", err)
		}
	}
	return nil
}

func (sm *serviceManager) Auth() AuthService       { return sm.authService }
func (sm *serviceManager) Student() StudentService { return sm.studentService }
func (sm *serviceManager) Admin() AdminService     { return sm.adminService }
func (sm *serviceManager) Catalog() CatalogService { return sm.catalogService }
func (sm *serviceManager) Export() ExportService   { return sm.exportService }
