package habitus

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
)

type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// Login authenticates against POST /auth/login and resolves the token out of
// whichever field name the deployed backend uses.
func (a *AuthClient) Login(ctx context.Context, creds request.LoginRequest) (response.LoginResult, error) {
	payload, _, err := a.client.do(ctx, http.MethodPost, "/auth/login", nil, creds)
	if err != nil {
		return response.LoginResult{}, err
	}

	var parsed response.LoginResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return response.LoginResult{}, fmt.Errorf("habitus: decode login response: %w", err)
	}

	token, err := parsed.ResolveToken()
	if err != nil {
		log.Printf("[habitus][auth] login response missing token field")
		return response.LoginResult{}, err
	}

	return response.LoginResult{User: parsed.User, Token: token}, nil
}

func (a *AuthClient) Logout(ctx context.Context) (response.LogoutResponse, error) {
	payload, _, err := a.client.do(ctx, http.MethodPost, "/auth/logout", nil, struct{}{})
	if err != nil {
		return response.LogoutResponse{}, err
	}

	var parsed response.LogoutResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return response.LogoutResponse{}, fmt.Errorf("habitus: decode logout response: %w", err)
	}
	return parsed, nil
}
