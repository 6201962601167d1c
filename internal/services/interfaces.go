package services

import (
	"context"
	"time"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Form DTOs live with the validator so the validation tags sit next to the
// rules, mirroring how request structs are organized elsewhere.
type RegisterRequest = validator.RegisterRequest
type LoginRequest = validator.LoginRequest
type ProfileUpdateRequest = validator.ProfileUpdateRequest
type AddCourseRequest = validator.AddCourseRequest
type AddMarkRequest = validator.AddMarkRequest
type AddVideoRequest = validator.AddVideoRequest
type EnrollStudentRequest = validator.EnrollStudentRequest

// ProfileUpload carries an optional profile picture submission. Save writes
// the uploaded content to the destination path.
type ProfileUpload struct {
	Filename string
	Save     func(dst string) error
}

// DashboardView is everything the dashboard template needs.
type DashboardView struct {
	Wish        string
	Marks       []*models.Mark
	ChartLabels []string
	ChartData   []int
	Enrollments []*models.Enrollment
}

// VideoView pairs a stored video with its derived embed URL.
type VideoView struct {
	Video    *models.Video
	EmbedURL string
}

// CatalogView is the public landing page data.
type CatalogView struct {
	Courses []*models.Course
	Videos  []*VideoView
	Quote   string
}

// AdminView is the admin console listing data.
type AdminView struct {
	Students []*models.User
	Courses  []*models.Course
	Videos   []*models.Video
}

// EnrollmentResult carries the names needed for the admin notice.
type EnrollmentResult struct {
	Enrollment  *models.Enrollment
	StudentName string
	CourseName  string
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type StudentService interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	BuildDashboard(ctx context.Context, user *models.User, today time.Time) (*DashboardView, error)
	UpdateProfile(ctx context.Context, userID uint, req *ProfileUpdateRequest, upload *ProfileUpload) (*models.User, error)
}

type AdminService interface {
	AddCourse(ctx context.Context, req *AddCourseRequest) (*models.Course, error)
	AddMark(ctx context.Context, req *AddMarkRequest) (*models.Mark, error)
	AddVideo(ctx context.Context, req *AddVideoRequest) (*models.Video, error)
	EnrollStudent(ctx context.Context, req *EnrollStudentRequest) (*EnrollmentResult, error)
	DeleteCourse(ctx context.Context, id uint) error
	DeleteVideo(ctx context.Context, id uint) error
	GetAdminView(ctx context.Context) (*AdminView, error)
}

type CatalogService interface {
	GetCatalog(ctx context.Context) (*CatalogView, error)
}

type ExportService interface {
	// ExportMarks renders every recorded mark as an XLSX workbook.
	ExportMarks(ctx context.Context) ([]byte, error)
}

// ServiceManager aggregates all services behind a single lifecycle.
type ServiceManager interface {
	Auth() AuthService
	Student() StudentService
	Admin() AdminService
	Catalog() CatalogService
	Export() ExportService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
