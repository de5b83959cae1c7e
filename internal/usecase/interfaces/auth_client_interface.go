package interfaces

import (
	"context"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
)

//go:generate mockgen -source=auth_client_interface.go -destination=mocks/auth_client_mock.go -package=mock_interfaces

// IAuthClient abstracts the backend auth endpoints.
type IAuthClient interface {
	Login(ctx context.Context, creds request.LoginRequest) (response.LoginResult, error)
	Logout(ctx context.Context) (response.LogoutResponse, error)
}
