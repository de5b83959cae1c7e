package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Fikriansyah-12/habitus-fe/internal/infrastructure/session"
)

func newGuardedRouter(t *testing.T, authenticated bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if authenticated {
		if err := store.SetToken("tok"); err != nil {
			t.Fatalf("seed token: %v", err)
		}
	}

	router := gin.New()
	router.GET("/", RedirectAuthenticated(store), func(c *gin.Context) {
		c.String(http.StatusOK, "login")
	})
	router.GET("/dashboard", RequireAuth(store), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	t.Run("unauthenticated navigation redirects to login", func(t *testing.T) {
		router := newGuardedRouter(t, false)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if got := w.Header().Get("Location"); got != "/" {
			t.Fatalf("expected redirect to /, got %q", got)
		}
	})

	t.Run("authenticated navigation passes through", func(t *testing.T) {
		router := newGuardedRouter(t, true)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

		if w.Code != http.StatusOK || w.Body.String() != "dashboard" {
			t.Fatalf("expected dashboard, got %d %q", w.Code, w.Body.String())
		}
	})
}

func TestRedirectAuthenticated(t *testing.T) {
	t.Run("authenticated operator skips the login screen", func(t *testing.T) {
		router := newGuardedRouter(t, true)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if got := w.Header().Get("Location"); got != "/dashboard" {
			t.Fatalf("expected redirect to /dashboard, got %q", got)
		}
	})

	t.Run("anonymous operator sees the login screen", func(t *testing.T) {
		router := newGuardedRouter(t, false)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		if w.Code != http.StatusOK || w.Body.String() != "login" {
			t.Fatalf("expected login, got %d %q", w.Code, w.Body.String())
		}
	})
}
