package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/novalearn/student-portal/internal/services"
	"github.com/novalearn/student-portal/internal/utils"
)

// DashboardHandler serves the authenticated student dashboard.
type DashboardHandler struct {
	BaseHandler
	studentService services.StudentService
}

func NewDashboardHandler(studentService services.StudentService, logger utils.Logger) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:    NewBaseHandler(logger),
		studentService: studentService,
	}
}

// Dashboard handles GET /dashboard.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user := currentUser(c)

	view, err := h.studentService.BuildDashboard(c.Request.Context(), user, time.Now())
	if err != nil {
		h.LogError(c, err, "dashboard build failed", "user_id", user.ID)
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again later.")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"user":         user,
		"wish":         view.Wish,
		"marks":        view.Marks,
		"chart_labels": view.ChartLabels,
		"chart_data":   view.ChartData,
		"enrollments":  view.Enrollments,
		"notices":      TakeNotices(c),
	})
}
