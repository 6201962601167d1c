package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/services"
	"github.com/novalearn/student-portal/internal/utils"
)

// AdminHandler serves the admin console and its mutations.
type AdminHandler struct {
	BaseHandler
	adminService  services.AdminService
	exportService services.ExportService
}

func NewAdminHandler(adminService services.AdminService, exportService services.ExportService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   NewBaseHandler(logger),
		adminService:  adminService,
		exportService: exportService,
	}
}

// ShowAdmin handles GET /admin.
func (h *AdminHandler) ShowAdmin(c *gin.Context) {
	view, err := h.adminService.GetAdminView(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "admin view load failed")
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again later.")
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"user":     currentUser(c),
		"students": view.Students,
		"courses":  view.Courses,
		"videos":   view.Videos,
		"notices":  TakeNotices(c),
	})
}

// HandleAdminForm handles POST /admin. The console is a single page with
// several forms; form_type selects which mutation runs.
func (h *AdminHandler) HandleAdminForm(c *gin.Context) {
	formType, ok := models.ParseAdminFormType(c.PostForm("form_type"))
	if !ok {
		Notice(c, models.NoticeWarning, "Unknown form submission.")
		Redirect(c, "/admin")
		return
	}

	switch formType {
	case models.FormAddCourse:
		h.addCourse(c)
	case models.FormAddMark:
		h.addMark(c)
	case models.FormAddVideo:
		h.addVideo(c)
	case models.FormEnrollStudent:
		h.enrollStudent(c)
	}
	Redirect(c, "/admin")
}

func (h *AdminHandler) addCourse(c *gin.Context) {
	var req services.AddCourseRequest
	if err := c.ShouldBind(&req); err != nil {
		Notice(c, models.NoticeDanger, "Please fill in all required fields.")
		return
	}

	if _, err := h.adminService.AddCourse(c.Request.Context(), &req); err != nil {
		h.LogError(c, err, "add course failed", "course_name", req.Name)
		Notice(c, models.NoticeDanger, "Could not add the course. Please try again.")
		return
	}
	Notice(c, models.NoticeSuccess, "Course added successfully.")
}

func (h *AdminHandler) addMark(c *gin.Context) {
	var req services.AddMarkRequest
	if err := c.ShouldBind(&req); err != nil {
		Notice(c, models.NoticeDanger, "Please fill in all required fields.")
		return
	}

	if _, err := h.adminService.AddMark(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrStudentNotFound) {
			Notice(c, models.NoticeDanger, "Student with that index number not found.")
			return
		}
		h.LogError(c, err, "add mark failed", "index_number", req.IndexNumber)
		Notice(c, models.NoticeDanger, "Could not add the mark. Please try again.")
		return
	}
	Notice(c, models.NoticeSuccess, "Mark added successfully.")
}

func (h *AdminHandler) addVideo(c *gin.Context) {
	var req services.AddVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		Notice(c, models.NoticeDanger, "Please fill in all required fields.")
		return
	}

	if _, err := h.adminService.AddVideo(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrInvalidVideoURL) {
			Notice(c, models.NoticeDanger, "Invalid YouTube URL provided.")
			return
		}
		h.LogError(c, err, "add video failed", "video_title", req.Title)
		Notice(c, models.NoticeDanger, "Could not add the video. Please try again.")
		return
	}
	Notice(c, models.NoticeSuccess, "Video added successfully.")
}

func (h *AdminHandler) enrollStudent(c *gin.Context) {
	var req services.EnrollStudentRequest
	if err := c.ShouldBind(&req); err != nil {
		Notice(c, models.NoticeDanger, "Invalid Student Index or Course.")
		return
	}

	result, err := h.adminService.EnrollStudent(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyEnrolled):
			Notice(c, models.NoticeWarning, fmt.Sprintf("%s is already enrolled in %s.", result.StudentName, result.CourseName))
		case errors.Is(err, services.ErrInvalidReference):
			Notice(c, models.NoticeDanger, "Invalid Student Index or Course.")
		default:
			h.LogError(c, err, "enroll student failed", "index_number", req.IndexNumber)
			Notice(c, models.NoticeDanger, "Could not enroll the student. Please try again.")
		}
		return
	}
	Notice(c, models.NoticeSuccess, fmt.Sprintf("Successfully enrolled %s in %s.", result.StudentName, result.CourseName))
}

// DeleteVideo handles POST /delete_video/:id.
func (h *AdminHandler) DeleteVideo(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.adminService.DeleteVideo(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrVideoNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.LogError(c, err, "delete video failed", "video_id", id)
		Notice(c, models.NoticeDanger, "Could not delete the video. Please try again.")
		Redirect(c, "/admin")
		return
	}

	Notice(c, models.NoticeSuccess, "Video deleted successfully.")
	Redirect(c, "/admin")
}

// DeleteCourse handles POST /delete_course/:id.
func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := h.adminService.DeleteCourse(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		h.LogError(c, err, "delete course failed", "course_id", id)
		Notice(c, models.NoticeDanger, "Could not delete the course. Please try again.")
		Redirect(c, "/admin")
		return
	}

	Notice(c, models.NoticeSuccess, "Course deleted successfully.")
	Redirect(c, "/admin")
}

// ExportMarks handles GET /admin/export_marks.
func (h *AdminHandler) ExportMarks(c *gin.Context) {
	data, err := h.exportService.ExportMarks(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "marks export failed")
		Notice(c, models.NoticeDanger, "Could not export marks. Please try again.")
		Redirect(c, "/admin")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="marks.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
