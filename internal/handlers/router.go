package handlers

import (
	"html/template"
	"net/http"
	"time"

	"gorm.io/datatypes"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/novalearn/student-portal/internal/services"
	"github.com/novalearn/student-portal/internal/utils"
)

// HandlerManager wires every handler to the service layer.
type HandlerManager struct {
	serviceManager services.ServiceManager
	sessionSecret  string

	home      *HomeHandler
	auth      *AuthHandler
	dashboard *DashboardHandler
	profile   *ProfileHandler
	admin     *AdminHandler
}

func NewHandlerManager(sm services.ServiceManager, logger utils.Logger, sessionSecret string) *HandlerManager {
	return &HandlerManager{
		serviceManager: sm,
		sessionSecret:  sessionSecret,
		home:           NewHomeHandler(sm.Catalog(), logger),
		auth:           NewAuthHandler(sm.Auth(), logger),
		dashboard:      NewDashboardHandler(sm.Student(), logger),
		profile:        NewProfileHandler(sm.Student(), logger),
		admin:          NewAdminHandler(sm.Admin(), sm.Export(), logger),
	}
}

// SetupRoutes registers templates, static assets, sessions and all routes.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.SetFuncMap(template.FuncMap{
		"formatDate": func(d datatypes.Date) string {
			return time.Time(d).Format("2006-01-02")
		},
	})
	router.LoadHTMLGlob("templates/*")
	router.Static("/static", "./static")

	store := cookie.NewStore([]byte(hm.sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions("portal_session", store))
	router.Use(SessionUserMiddleware(hm.serviceManager.Student()))

	router.GET("/health", hm.healthCheck)

	router.GET("/", hm.home.Index)
	router.GET("/register", hm.auth.ShowRegister)
	router.POST("/register", hm.auth.Register)
	router.GET("/login", hm.auth.ShowLogin)
	router.POST("/login", hm.auth.Login)
	router.GET("/logout", hm.auth.Logout)

	authed := router.Group("/", RequireAuth())
	{
		authed.GET("/dashboard", hm.dashboard.Dashboard)
		authed.GET("/edit_profile", hm.profile.ShowEditProfile)
		authed.POST("/edit_profile", hm.profile.UpdateProfile)
	}

	admin := router.Group("/", RequireAdmin())
	{
		admin.GET("/admin", hm.admin.ShowAdmin)
		admin.POST("/admin", hm.admin.HandleAdminForm)
		admin.GET("/admin/export_marks", hm.admin.ExportMarks)
		admin.POST("/delete_video/:id", hm.admin.DeleteVideo)
		admin.POST("/delete_course/:id", hm.admin.DeleteCourse)
	}
}

func (hm *HandlerManager) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
