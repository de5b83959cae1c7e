package usecase

import (
	"context"
	"log"
	"sync"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
	"github.com/Fikriansyah-12/habitus-fe/internal/infrastructure/session"
	"github.com/Fikriansyah-12/habitus-fe/internal/usecase/interfaces"
)

// IAuthUseCase owns the login/logout flow. It is the only writer of the
// session store besides the auth-expired hook in the backend client.
type IAuthUseCase interface {
	Login(ctx context.Context, creds request.LoginRequest) (response.LoginResult, error)
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	CurrentUser() *entities.User
	State() AuthState
}

type AuthState struct {
	User            *entities.User `json:"user"`
	IsAuthenticated bool           `json:"isAuthenticated"`
	IsLoading       bool           `json:"isLoading"`
	ErrorMessage    string         `json:"errorMessage"`
}

type AuthUseCase struct {
	client interfaces.IAuthClient
	store  *session.Store

	mu           sync.Mutex
	isLoading    bool
	errorMessage string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(client interfaces.IAuthClient, store *session.Store) *AuthUseCase {
	return &AuthUseCase{client: client, store: store}
}

func (u *AuthUseCase) Login(ctx context.Context, creds request.LoginRequest) (response.LoginResult, error) {
	u.mu.Lock()
	u.isLoading = true
	u.errorMessage = ""
	u.mu.Unlock()

	result, err := u.client.Login(ctx, creds)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.isLoading = false
	if err != nil {
		u.errorMessage = err.Error()
		return response.LoginResult{}, err
	}

	if err := u.store.SetUser(result.User); err != nil {
		log.Printf("[auth][usecase] failed persisting user err=%v", err)
	}
	if err := u.store.SetToken(result.Token); err != nil {
		log.Printf("[auth][usecase] failed persisting token err=%v", err)
	}
	if err := u.store.SetEmail(creds.Email); err != nil {
		log.Printf("[auth][usecase] failed persisting email err=%v", err)
	}
	return result, nil
}

// Logout notifies the backend best-effort, then always destroys the local
// session.
func (u *AuthUseCase) Logout(ctx context.Context) error {
	if _, err := u.client.Logout(ctx); err != nil {
		log.Printf("[auth][usecase] backend logout failed err=%v", err)
	}
	return u.store.Clear()
}

func (u *AuthUseCase) IsAuthenticated() bool {
	return u.store.IsAuthenticated()
}

func (u *AuthUseCase) CurrentUser() *entities.User {
	return u.store.User()
}

func (u *AuthUseCase) State() AuthState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return AuthState{
		User:            u.store.User(),
		IsAuthenticated: u.store.IsAuthenticated(),
		IsLoading:       u.isLoading,
		ErrorMessage:    u.errorMessage,
	}
}
