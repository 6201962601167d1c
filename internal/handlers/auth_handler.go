package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/services"
	"github.com/novalearn/student-portal/internal/utils"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService, logger utils.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		authService: authService,
	}
}

// ShowRegister handles GET /register.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"notices": TakeNotices(c),
	})
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		Notice(c, models.NoticeDanger, "Please fill in all required fields.")
		Redirect(c, "/register")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordMismatch):
			Notice(c, models.NoticeDanger, "Passwords do not match!")
		case errors.Is(err, services.ErrEmailTaken):
			Notice(c, models.NoticeDanger, "Email already registered.")
		case errors.Is(err, services.ErrValidationFailed):
			Notice(c, models.NoticeDanger, "Please fill in all required fields.")
		default:
			h.LogError(c, err, "registration failed", "email", req.Email)
			Notice(c, models.NoticeDanger, "Registration failed. Please try again.")
		}
		Redirect(c, "/register")
		return
	}

	h.LogRequest(c, "user registered", "user_id", user.ID, "index_number", user.IndexNumber)
	Notice(c, models.NoticeSuccess, "Registration successful! Please log in.")
	Redirect(c, "/login")
}

// ShowLogin handles GET /login.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"notices": TakeNotices(c),
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		Notice(c, models.NoticeDanger, "Invalid email or password.")
		Redirect(c, "/login")
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			h.LogError(c, err, "login failed", "email", req.Email)
		}
		Notice(c, models.NoticeDanger, "Invalid email or password.")
		Redirect(c, "/login")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserIDKey, user.ID)
	if err := session.Save(); err != nil {
		h.LogError(c, err, "session save failed", "user_id", user.ID)
	}

	h.LogRequest(c, "user logged in", "user_id", user.ID)
	Notice(c, models.NoticeSuccess, "You are now logged in.")
	Redirect(c, "/dashboard")
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(sessionUserIDKey)
	session.Clear()
	if err := session.Save(); err != nil {
		h.LogError(c, err, "session save failed")
	}

	Notice(c, models.NoticeInfo, "You have been logged out.")
	Redirect(c, "/")
}
