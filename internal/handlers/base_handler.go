package handlers

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/novalearn/student-portal/internal/models"
	"github.com/novalearn/student-portal/internal/utils"
)

func init() {
	// Notices travel inside the session cookie between the redirect and the
	// next render.
	gob.Register(models.Notice{})
}

// BaseHandler provides logging helpers shared by all handlers.
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.FromContext(c.Request.Context(), h.logger).Info(msg, args...)
}

func (h *BaseHandler) LogError(c *gin.Context, err error, msg string, args ...any) {
	args = append(args, "error", err)
	utils.FromContext(c.Request.Context(), h.logger).Error(msg, args...)
}

// Notice queues a flash notice for the next rendered page.
func Notice(c *gin.Context, category models.NoticeCategory, message string) {
	session := sessions.Default(c)
	session.AddFlash(models.Notice{Category: category, Message: message})
	_ = session.Save()
}

// TakeNotices drains the queued flash notices.
func TakeNotices(c *gin.Context) []models.Notice {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) > 0 {
		_ = session.Save()
	}

	notices := make([]models.Notice, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(models.Notice); ok {
			notices = append(notices, n)
		}
	}
	return notices
}

// Redirect issues the see-other redirect every mutating handler ends with.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// currentUser returns the session user placed in the context by the
// session-user middleware, or nil.
func currentUser(c *gin.Context) *models.User {
	if v, exists := c.Get(contextUserKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
