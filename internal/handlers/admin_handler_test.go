package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/services"
	"github.com/novalearn/student-portal/internal/utils"
)

// fakeAdminService counts calls so tests can assert which operation, if any,
// a form submission dispatched.
type fakeAdminService struct {
	addCourseCalls int
	addMarkCalls   int
	addVideoCalls  int
	enrollCalls    int
	deleteCalls    int
}

func (s *fakeAdminService) AddCourse(ctx context.Context, req *services.AddCourseRequest) (*models.Course, error) {
	s.addCourseCalls++
	return &models.Course{ID: 1, Name: req.Name, Price: req.Price}, nil
}

func (s *fakeAdminService) AddMark(ctx context.Context, req *services.AddMarkRequest) (*models.Mark, error) {
	s.addMarkCalls++
	return &models.Mark{ID: 1, PaperName: req.PaperName, Score: req.Score}, nil
}

func (s *fakeAdminService) AddVideo(ctx context.Context, req *services.AddVideoRequest) (*models.Video, error) {
	s.addVideoCalls++
	return &models.Video{ID: 1, Title: req.Title, YoutubeLink: req.Link}, nil
}

func (s *fakeAdminService) EnrollStudent(ctx context.Context, req *services.EnrollStudentRequest) (*services.EnrollmentResult, error) {
	s.enrollCalls++
	return &services.EnrollmentResult{
		Enrollment:  &models.Enrollment{ID: 1},
		StudentName: "Ama Mensah",
		CourseName:  "Core Maths",
	}, nil
}

func (s *fakeAdminService) DeleteCourse(ctx context.Context, id uint) error {
	s.deleteCalls++
	return nil
}

func (s *fakeAdminService) DeleteVideo(ctx context.Context, id uint) error {
	s.deleteCalls++
	return nil
}

func (s *fakeAdminService) GetAdminView(ctx context.Context) (*services.AdminView, error) {
	return &services.AdminView{}, nil
}

func (s *fakeAdminService) totalCalls() int {
	return s.addCourseCalls + s.addMarkCalls + s.addVideoCalls + s.enrollCalls + s.deleteCalls
}

// newAdminFormRouter mounts the admin form handler behind the admin gate,
// plus a drain route so tests can read the queued notices.
func newAdminFormRouter(svc services.AdminService) *gin.Engine {
	router := newTestRouter()
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	handler := NewAdminHandler(svc, nil, logger)

	admin := &models.User{ID: 1, IsAdmin: true}
	router.POST("/admin", injectUser(admin), RequireAdmin(), handler.HandleAdminForm)
	router.GET("/notices", func(c *gin.Context) {
		var sb strings.Builder
		for _, n := range TakeNotices(c) {
			fmt.Fprintf(&sb, "%s|%s\n", n.Category, n.Message)
		}
		c.String(http.StatusOK, sb.String())
	})
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func drainNotices(router *gin.Engine, from *httptest.ResponseRecorder) string {
	req := httptest.NewRequest(http.MethodGet, "/notices", nil)
	for _, cookie := range from.Result().Cookies() {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Body.String()
}

func TestAdminHandler_HandleAdminForm(t *testing.T) {
	t.Run("unknown form type warns without dispatching", func(t *testing.T) {
		svc := &fakeAdminService{}
		router := newAdminFormRouter(svc)

		w := postForm(router, "/admin", url.Values{"form_type": {"drop_tables"}})

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected %d, got %d", http.StatusSeeOther, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/admin" {
			t.Errorf("expected redirect to /admin, got %q", loc)
		}
		if calls := svc.totalCalls(); calls != 0 {
			t.Errorf("expected no operation dispatched, got %d calls", calls)
		}

		notices := drainNotices(router, w)
		if !strings.Contains(notices, "warning|Unknown form submission.") {
			t.Errorf("expected a warning notice, got %q", notices)
		}
	})

	t.Run("missing form type warns without dispatching", func(t *testing.T) {
		svc := &fakeAdminService{}
		router := newAdminFormRouter(svc)

		w := postForm(router, "/admin", url.Values{"course_name": {"Core Maths"}})

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected %d, got %d", http.StatusSeeOther, w.Code)
		}
		if calls := svc.totalCalls(); calls != 0 {
			t.Errorf("expected no operation dispatched, got %d calls", calls)
		}
	})

	t.Run("add_course dispatches exactly one operation", func(t *testing.T) {
		svc := &fakeAdminService{}
		router := newAdminFormRouter(svc)

		w := postForm(router, "/admin", url.Values{
			"form_type":    {"add_course"},
			"course_name":  {"Core Maths"},
			"course_price": {"50"},
		})

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected %d, got %d", http.StatusSeeOther, w.Code)
		}
		if svc.addCourseCalls != 1 || svc.totalCalls() != 1 {
			t.Errorf("expected a single add_course call, got %+v", svc)
		}

		notices := drainNotices(router, w)
		if !strings.Contains(notices, "success|Course added successfully.") {
			t.Errorf("expected a success notice, got %q", notices)
		}
	})
}
