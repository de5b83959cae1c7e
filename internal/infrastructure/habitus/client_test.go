package habitus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Fikriansyah-12/habitus-fe/internal/infrastructure/session"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestClient_Do(t *testing.T) {
	t.Run("bearer token and request id attached", func(t *testing.T) {
		var gotAuth, gotRequestID, gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotRequestID = r.Header.Get("X-Request-ID")
			gotContentType = r.Header.Get("Content-Type")
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		store := newTestStore(t)
		if err := store.SetToken("tok-123"); err != nil {
			t.Fatalf("set token: %v", err)
		}

		client := NewClient(server.URL, store, nil)
		if _, _, err := client.do(context.Background(), http.MethodPost, "/anything", nil, map[string]string{"k": "v"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotAuth != "Bearer tok-123" {
			t.Fatalf("expected bearer header, got %q", gotAuth)
		}
		if gotRequestID == "" {
			t.Fatal("expected request id header")
		}
		if gotContentType != "application/json" {
			t.Fatalf("expected json content type, got %q", gotContentType)
		}
	})

	t.Run("no bearer header without a session", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, newTestStore(t), nil)
		if _, _, err := client.do(context.Background(), http.MethodGet, "/anything", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAuth != "" {
			t.Fatalf("expected no auth header, got %q", gotAuth)
		}
	})

	t.Run("401 with a stored token clears the session and notifies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"token expired"}`))
		}))
		defer server.Close()

		store := newTestStore(t)
		if err := store.SetToken("stale"); err != nil {
			t.Fatalf("set token: %v", err)
		}

		notified := false
		client := NewClient(server.URL, store, func() { notified = true })

		_, _, err := client.do(context.Background(), http.MethodGet, "/anything", nil, nil)
		if err == nil || err.Error() != "token expired" {
			t.Fatalf("expected token expired error, got %v", err)
		}
		if store.IsAuthenticated() {
			t.Fatal("expected session cleared after rejected token")
		}
		if !notified {
			t.Fatal("expected auth-expired hook to fire")
		}
	})

	t.Run("401 without a stored token stays an ordinary error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid credentials"}`))
		}))
		defer server.Close()

		notified := false
		client := NewClient(server.URL, newTestStore(t), func() { notified = true })

		_, _, err := client.do(context.Background(), http.MethodPost, "/auth/login", nil, nil)
		if err == nil || err.Error() != "Invalid credentials" {
			t.Fatalf("expected credentials error, got %v", err)
		}
		if notified {
			t.Fatal("auth-expired hook must not fire for a login failure")
		}
	})

	t.Run("trailing slash in base url", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(server.URL+"/", newTestStore(t), nil)
		if _, _, err := client.do(context.Background(), http.MethodGet, "/customers", nil, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/customers" {
			t.Fatalf("expected /customers, got %q", gotPath)
		}
	})
}

func TestExtractError(t *testing.T) {
	t.Run("message string wins", func(t *testing.T) {
		err := extractError(400, []byte(`{"message":"Customer name is required"}`))
		if err.Error() != "Customer name is required" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("message array joins with comma", func(t *testing.T) {
		err := extractError(400, []byte(`{"message":["name is required","phone is required"]}`))
		if err.Error() != "name is required, phone is required" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("bare array body joins with comma", func(t *testing.T) {
		err := extractError(400, []byte(`["first","second"]`))
		if err.Error() != "first, second" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("string body passes through", func(t *testing.T) {
		err := extractError(500, []byte(`"upstream exploded"`))
		if err.Error() != "upstream exploded" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("unusable body falls back to status", func(t *testing.T) {
		err := extractError(502, []byte(`<html>bad gateway</html>`))
		if err.Error() != "request failed with status 502" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("empty body falls back to status", func(t *testing.T) {
		err := extractError(404, nil)
		if err.Error() != "request failed with status 404" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})
}
