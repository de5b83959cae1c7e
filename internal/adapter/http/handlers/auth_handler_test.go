package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
	"github.com/Fikriansyah-12/habitus-fe/internal/infrastructure/session"
	"github.com/Fikriansyah-12/habitus-fe/internal/usecase"
	mock_interfaces "github.com/Fikriansyah-12/habitus-fe/internal/usecase/interfaces/mocks"
)

func newAuthFixture(t *testing.T) (*mock_interfaces.MockIAuthClient, *session.Store, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	client := mock_interfaces.NewMockIAuthClient(ctrl)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	handler := NewAuthHandler(usecase.NewAuthUseCase(client, store))

	router := gin.New()
	router.GET("/", handler.ShowLogin)
	router.POST("/login", handler.Login)
	router.POST("/logout", handler.Logout)
	return client, store, router
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success writes the session and points to the dashboard", func(t *testing.T) {
		client, store, router := newAuthFixture(t)

		client.EXPECT().Login(gomock.Any(), gomock.Any()).Return(response.LoginResult{
			User:  entities.User{ID: "u-1", Name: "Operator"},
			Token: "tok-123",
		}, nil)

		body := strings.NewReader(`{"email":"ops@habitus.id","password":"secret"}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", body))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var parsed struct {
			RedirectTo string `json:"redirectTo"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if parsed.RedirectTo != "/dashboard" {
			t.Fatalf("expected /dashboard, got %q", parsed.RedirectTo)
		}
		if !store.IsAuthenticated() {
			t.Fatal("session not written")
		}
	})

	t.Run("malformed payload is a 400", func(t *testing.T) {
		_, _, router := newAuthFixture(t)

		body := strings.NewReader(`{"email":"not-an-email"}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", body))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("backend rejection is a 401 with the backend message", func(t *testing.T) {
		client, store, router := newAuthFixture(t)

		client.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(response.LoginResult{}, errors.New("Invalid credentials"))

		body := strings.NewReader(`{"email":"ops@habitus.id","password":"wrong"}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", body))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Invalid credentials") {
			t.Fatalf("backend message lost: %s", w.Body.String())
		}
		if store.IsAuthenticated() {
			t.Fatal("session written on failed login")
		}
	})

	t.Run("token-less login response is a 502", func(t *testing.T) {
		client, _, router := newAuthFixture(t)

		client.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(response.LoginResult{}, response.ErrMissingToken)

		body := strings.NewReader(`{"email":"ops@habitus.id","password":"secret"}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", body))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Login response missing token field") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	client, store, router := newAuthFixture(t)

	if err := store.SetToken("tok"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	client.EXPECT().Logout(gomock.Any()).Return(response.LogoutResponse{}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if store.IsAuthenticated() {
		t.Fatal("session survived logout")
	}
}

func TestAuthHandler_ShowLogin(t *testing.T) {
	_, _, router := newAuthFixture(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"screen":"login"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
