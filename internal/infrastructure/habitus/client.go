// Package habitus contains the HTTP clients for the upstream Habitus REST
// backend. The base Client owns the cross-cutting policy (bearer token
// injection, 401 handling, error extraction); the per-resource clients map
// one method to one backend operation.
package habitus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/Fikriansyah-12/habitus-fe/internal/infrastructure/session"
)

// Client is the shared transport for every resource client.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	store         *session.Store
	onAuthExpired func()
}

// NewClient builds the base client. onAuthExpired runs after a stored token
// is rejected and the session has been cleared; it may be nil.
//
// No timeout is configured at this layer; transport defaults apply.
func NewClient(baseURL string, store *session.Store, onAuthExpired func()) *Client {
	return &Client{
		httpClient:    &http.Client{},
		baseURL:       strings.TrimRight(baseURL, "/"),
		store:         store,
		onAuthExpired: onAuthExpired,
	}
}

// do issues one request and returns the response body and content type.
// Every failure comes back as a single descriptive error, never a raw
// response object.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, string, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("habitus: encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, "", fmt.Errorf("habitus: build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	hadToken := false
	if token := c.store.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
		hadToken = true
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("habitus: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("habitus: read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// A rejected token means the session expired: clear it and notify.
		// Without a stored token the 401 stays an ordinary error so the
		// navigation guard performs the redirect instead of this layer.
		if hadToken {
			log.Printf("[habitus][client] token rejected, clearing session")
			if clearErr := c.store.Clear(); clearErr != nil {
				log.Printf("[habitus][client] failed clearing session err=%v", clearErr)
			}
			if c.onAuthExpired != nil {
				c.onAuthExpired()
			}
		}
		return nil, "", extractError(resp.StatusCode, payload)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, "", extractError(resp.StatusCode, payload)
	}

	return payload, resp.Header.Get("Content-Type"), nil
}

// extractError derives a human-readable message from a failure body,
// preferring the structured message field, then an array of errors joined
// into one string, then a raw string body, then the bare status.
func extractError(status int, body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 {
		var obj map[string]json.RawMessage
		if json.Unmarshal(trimmed, &obj) == nil {
			if raw, ok := obj["message"]; ok {
				var msg string
				if json.Unmarshal(raw, &msg) == nil && msg != "" {
					return errors.New(msg)
				}
				var msgs []string
				if json.Unmarshal(raw, &msgs) == nil && len(msgs) > 0 {
					return errors.New(strings.Join(msgs, ", "))
				}
			}
		}
		var list []string
		if json.Unmarshal(trimmed, &list) == nil && len(list) > 0 {
			return errors.New(strings.Join(list, ", "))
		}
		var str string
		if json.Unmarshal(trimmed, &str) == nil && str != "" {
			return errors.New(str)
		}
	}
	return fmt.Errorf("request failed with status %d", status)
}
