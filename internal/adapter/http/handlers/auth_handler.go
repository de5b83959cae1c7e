package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/request"
	response "github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/dto/response"
	"github.com/Fikriansyah-12/habitus-fe/internal/usecase"
	"github.com/Fikriansyah-12/habitus-fe/pkg"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
)

// AuthHandler handles the login screen and the session lifecycle.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// ShowLogin renders the login screen view model. Authenticated operators
// never reach this handler; the router redirects them to the dashboard.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"screen": "login",
		"auth":   h.usecase.State(),
	})
}

// Login authenticates against the backend and persists the session.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Login(c.Request.Context(), payload)
	if err != nil {
		appErr := mapLoginError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       result.User,
		"redirectTo": "/dashboard",
	})
}

// Logout notifies the backend best-effort and always clears the local session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context()); err != nil {
		appErr := pkg.NewDomainError("LOGOUT_FAILED", "Failed to clear session", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirectTo": "/"})
}

func mapLoginError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, response.ErrMissingToken):
		return pkg.NewDomainError("LOGIN_RESPONSE_INVALID", err.Error(), err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("LOGIN_FAILED", err.Error(), err, http.StatusUnauthorized)
	}
}
