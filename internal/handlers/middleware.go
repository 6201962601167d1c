package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/services"
	"github.com/novalearn/student-portal/internal/utils"
)

const (
	sessionUserIDKey = "user_id"
	contextUserKey   = "user"
)

// SetupMiddleware sets up common middleware for the Gin router.
func SetupMiddleware(router *gin.Engine, logger utils.Logger) {
	router.Use(RequestIDMiddleware())
	router.Use(gin.Recovery())
	router.Use(utils.ContextLogger(logger))
	router.Use(utils.LoggerMiddleware(logger))
	router.Use(SecurityMiddleware())
}

// RequestIDMiddleware tags each request with a unique id.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}

// SecurityMiddleware adds security headers.
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "SAMEORIGIN")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// SessionUserMiddleware resolves the session's user, if any, into the
// request context. It never blocks a request on its own.
func SessionUserMiddleware(studentService services.StudentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if id, ok := session.Get(sessionUserIDKey).(uint); ok {
			user, err := studentService.GetByID(c.Request.Context(), id)
			if err == nil {
				c.Set(contextUserKey, user)
			} else {
				// Stale session; drop it so the user is asked to log in again.
				session.Delete(sessionUserIDKey)
				_ = session.Save()
			}
		}
		c.Next()
	}
}

// RequireAuth redirects unauthenticated requests to the login page with a
// warning notice.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			Notice(c, models.NoticeWarning, "Please log in to access this page.")
			Redirect(c, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin redirects authenticated non-admins back to the dashboard
// with a warning; it never hard-fails.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			Notice(c, models.NoticeWarning, "Please log in to access this page.")
			Redirect(c, "/login")
			c.Abort()
			return
		}
		if !user.IsAdmin {
			Notice(c, models.NoticeDanger, "You do not have permission to access this page.")
			Redirect(c, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
