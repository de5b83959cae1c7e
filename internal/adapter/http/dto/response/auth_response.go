package response

import (
	"errors"
	"time"

	"github.com/Fikriansyah-12/habitus-fe/internal/domain/entities"
)

// ErrMissingToken is raised when a login response carries none of the known
// token field names. The message is load-bearing: screens match on it.
var ErrMissingToken = errors.New("Login response missing token field")

// LoginResponse is the raw login payload. The backend has renamed the token
// field across releases, so every historical name is declared here and
// ResolveToken probes them in precedence order.
type LoginResponse struct {
	User           entities.User `json:"user"`
	Token          string        `json:"token"`
	AccessToken    string        `json:"accessToken"`
	AccessTokenAlt string        `json:"access_token"`
	JWT            string        `json:"jwt"`
}

func (r LoginResponse) ResolveToken() (string, error) {
	for _, tok := range []string{r.Token, r.AccessToken, r.AccessTokenAlt, r.JWT} {
		if tok != "" {
			return tok, nil
		}
	}
	return "", ErrMissingToken
}

// LoginResult is the stable session shape surfaced to the rest of the
// console once the token has been resolved.
type LoginResult struct {
	User  entities.User `json:"user"`
	Token string        `json:"token"`
}

type LogoutResponse struct {
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}
