package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/novalearn/student-portal/internal/models"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(sessions.Sessions("portal_session", cookie.NewStore([]byte("test-secret"))))
	return router
}

// injectUser places a user in the request context, standing in for the
// session loader.
func injectUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user != nil {
			c.Set(contextUserKey, user)
		}
		c.Next()
	}
}

func TestRequireAuth(t *testing.T) {
	t.Run("anonymous request redirects to login", func(t *testing.T) {
		router := newTestRouter()
		router.GET("/dashboard", RequireAuth(), func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected %d, got %d", http.StatusSeeOther, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Errorf("expected redirect to /login, got %q", loc)
		}
	})

	t.Run("authenticated request passes", func(t *testing.T) {
		router := newTestRouter()
		router.GET("/dashboard", injectUser(&models.User{ID: 1}), RequireAuth(), func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d", http.StatusOK, w.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("non-admin is sent back to the dashboard", func(t *testing.T) {
		router := newTestRouter()
		router.GET("/admin", injectUser(&models.User{ID: 1}), RequireAdmin(), func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected %d, got %d", http.StatusSeeOther, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/dashboard" {
			t.Errorf("expected redirect to /dashboard, got %q", loc)
		}
	})

	t.Run("admin passes", func(t *testing.T) {
		router := newTestRouter()
		router.GET("/admin", injectUser(&models.User{ID: 1, IsAdmin: true}), RequireAdmin(), func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("anonymous is sent to login", func(t *testing.T) {
		router := newTestRouter()
		router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected %d, got %d", http.StatusSeeOther, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Errorf("expected redirect to /login, got %q", loc)
		}
	})
}
