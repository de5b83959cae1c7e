package request

// LoginRequest is the credential payload submitted from the login screen and
// forwarded verbatim to POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
