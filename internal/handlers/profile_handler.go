package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/services"
	"github.com/novalearn/student-portal/internal/utils"
)

// ProfileHandler serves the profile edit form.
type ProfileHandler struct {
	BaseHandler
	studentService services.StudentService
}

func NewProfileHandler(studentService services.StudentService, logger utils.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    NewBaseHandler(logger),
		studentService: studentService,
	}
}

// ShowEditProfile handles GET /edit_profile.
func (h *ProfileHandler) ShowEditProfile(c *gin.Context) {
	c.HTML(http.StatusOK, "edit_profile.html", gin.H{
		"user":    currentUser(c),
		"notices": TakeNotices(c),
	})
}

// UpdateProfile handles POST /edit_profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user := currentUser(c)

	var req services.ProfileUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		Notice(c, models.NoticeDanger, "Please fill in all required fields.")
		Redirect(c, "/edit_profile")
		return
	}

	var upload *services.ProfileUpload
	if file, err := c.FormFile("profile_picture"); err == nil && file.Filename != "" {
		upload = &services.ProfileUpload{
			Filename: file.Filename,
			Save: func(dst string) error {
				return c.SaveUploadedFile(file, dst)
			},
		}
	}

	if _, err := h.studentService.UpdateProfile(c.Request.Context(), user.ID, &req, upload); err != nil {
		h.LogError(c, err, "profile update failed", "user_id", user.ID)
		Notice(c, models.NoticeDanger, "Could not update your profile. Please try again.")
		Redirect(c, "/edit_profile")
		return
	}

	Notice(c, models.NoticeSuccess, "Your profile has been updated successfully!")
	Redirect(c, "/dashboard")
}
