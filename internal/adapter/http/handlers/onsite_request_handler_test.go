package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
	"github.com/Fikriansyah-12/habitus-fe/internal/usecase"
	mock_interfaces "github.com/Fikriansyah-12/habitus-fe/internal/usecase/interfaces/mocks"
)

func newRequestFixture(t *testing.T) (*mock_interfaces.MockIOnsiteRequestClient, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	client := mock_interfaces.NewMockIOnsiteRequestClient(ctrl)

	handler := NewOnsiteRequestHandler(usecase.NewOnsiteRequestUseCase(client))

	router := gin.New()
	router.GET("/request/list", handler.List)
	router.GET("/request/form", handler.Form)
	router.POST("/request/form", handler.Create)
	router.GET("/request/edit", handler.Edit)
	router.GET("/request/detail", handler.Detail)
	router.POST("/request/status", handler.UpdateStatus)
	router.POST("/request/delete", handler.Delete)
	router.GET("/request/export", handler.Export)
	return client, router
}

func TestOnsiteRequestHandler_List(t *testing.T) {
	client, router := newRequestFixture(t)

	client.EXPECT().FindAll(gomock.Any(), map[string]string{"status": "REQUESTED", "page": "2"}).
		Return([]response.OnsiteRequestResponse{{ID: "r-1"}}, 40, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/list?status=REQUESTED&page=2", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"totalRequests":40`) {
		t.Fatalf("total missing from state: %s", w.Body.String())
	}
}

func TestOnsiteRequestHandler_Form(t *testing.T) {
	_, router := newRequestFixture(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/form", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	for _, purpose := range entities.RequestPurposes() {
		if !strings.Contains(w.Body.String(), string(purpose)) {
			t.Fatalf("purpose %q missing: %s", purpose, w.Body.String())
		}
	}
}

func TestOnsiteRequestHandler_Create(t *testing.T) {
	t.Run("valid payload creates and points back to the list", func(t *testing.T) {
		client, router := newRequestFixture(t)

		client.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(response.OnsiteRequestResponse{ID: "r-1"}, nil)

		body := strings.NewReader(`{
			"purpose": "Survey",
			"onsiteAt": "2024-03-01T09:00:00Z",
			"address": "Jl. Sudirman 1",
			"quoteId": "q-1"
		}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/request/form", body))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"redirectTo":"/request/list"`) {
			t.Fatalf("redirect missing: %s", w.Body.String())
		}
	})

	t.Run("missing required fields is a 400", func(t *testing.T) {
		_, router := newRequestFixture(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/request/form", strings.NewReader(`{"purpose":"Survey"}`)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("backend rejection surfaces the message", func(t *testing.T) {
		client, router := newRequestFixture(t)

		client.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(response.OnsiteRequestResponse{}, errors.New("quote already used"))

		body := strings.NewReader(`{
			"purpose": "Survey",
			"onsiteAt": "2024-03-01T09:00:00Z",
			"address": "Jl. Sudirman 1",
			"quoteId": "q-1"
		}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/request/form", body))

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "quote already used") {
			t.Fatalf("backend message lost: %s", w.Body.String())
		}
	})
}

func TestOnsiteRequestHandler_Edit(t *testing.T) {
	t.Run("missing id is a 400", func(t *testing.T) {
		_, router := newRequestFixture(t)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/edit", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("failed load sends the operator back to the list", func(t *testing.T) {
		client, router := newRequestFixture(t)

		client.EXPECT().FindOne(gomock.Any(), "ghost").
			Return(response.OnsiteRequestResponse{}, errors.New("not found"))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/edit?id=ghost", nil))

		if w.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", w.Code)
		}
		if got := w.Header().Get("Location"); got != "/request/list" {
			t.Fatalf("expected redirect to /request/list, got %q", got)
		}
	})

	t.Run("successful load renders the form", func(t *testing.T) {
		client, router := newRequestFixture(t)

		client.EXPECT().FindOne(gomock.Any(), "r-1").
			Return(response.OnsiteRequestResponse{ID: "r-1", Address: "Jl. Sudirman 1"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/edit?id=r-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"screen":"request-edit"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestOnsiteRequestHandler_Detail(t *testing.T) {
	t.Run("loads the request and its timeline", func(t *testing.T) {
		client, router := newRequestFixture(t)

		client.EXPECT().FindOne(gomock.Any(), "r-1").
			Return(response.OnsiteRequestResponse{ID: "r-1"}, nil)
		client.EXPECT().Timeline(gomock.Any(), "r-1").
			Return([]entities.OnsiteRequestLog{{ID: "l-1", Action: entities.LogActionCreated}}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/detail?id=r-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "CREATED") {
			t.Fatalf("timeline missing: %s", w.Body.String())
		}
	})

	t.Run("action query narrows the trail", func(t *testing.T) {
		client, router := newRequestFixture(t)

		client.EXPECT().FindOne(gomock.Any(), "r-1").
			Return(response.OnsiteRequestResponse{ID: "r-1"}, nil)
		client.EXPECT().Logs(gomock.Any(), "r-1", "STATUS_CHANGED").
			Return([]entities.OnsiteRequestLog{}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/detail?id=r-1&action=STATUS_CHANGED", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOnsiteRequestHandler_Export(t *testing.T) {
	client, router := newRequestFixture(t)

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	client.EXPECT().ExportExcel(gomock.Any(), map[string]string{"status": "APPROVED"}).
		Return(entities.Spreadsheet{ContentType: contentType, Content: []byte("sheet-bytes")}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/request/export?status=APPROVED", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != contentType {
		t.Fatalf("content type lost: %q", got)
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "onsite-requests.xlsx") {
		t.Fatalf("attachment header missing: %q", w.Header().Get("Content-Disposition"))
	}
	if w.Body.String() != "sheet-bytes" {
		t.Fatalf("body mangled: %q", w.Body.String())
	}
}
