package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fikriansyah-12/habitus-fe/internal/infrastructure/session"
)

// RequireAuth is the navigation guard for protected screens: an
// unauthenticated operator is redirected to the login path.
func RequireAuth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectAuthenticated sends an already-authenticated operator visiting the
// login screen straight to the dashboard.
func RedirectAuthenticated(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store.IsAuthenticated() {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
