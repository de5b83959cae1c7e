package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fikriansyah-12/habitus-fe/internal/usecase"
)

// DashboardHandler renders the landing screen shown after login.
type DashboardHandler struct {
	auth     usecase.IAuthUseCase
	requests usecase.IOnsiteRequestUseCase
}

func NewDashboardHandler(auth usecase.IAuthUseCase, requests usecase.IOnsiteRequestUseCase) *DashboardHandler {
	return &DashboardHandler{auth: auth, requests: requests}
}

// Show serves the dashboard view model. A statistics failure degrades the
// screen instead of blocking it.
func (h *DashboardHandler) Show(c *gin.Context) {
	view := gin.H{
		"screen": "dashboard",
		"user":   h.auth.CurrentUser(),
	}

	stats, err := h.requests.Statistics(c.Request.Context())
	if err != nil {
		view["errorMessage"] = err.Error()
	} else {
		view["statistics"] = stats
	}

	c.JSON(http.StatusOK, view)
}
