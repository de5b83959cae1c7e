package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/handlers"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/middleware"
	"github.com/Fikriansyah-12/habitus-fe/internal/infrastructure/session"
)

const (
	PathRequests  = "/request"
	PathCustomers = "/customer"
	PathQuotes    = "/quote"
)

func addConsoleRoutes(
	router *gin.Engine,
	store *session.Store,
	authHandler *handlers.AuthHandler,
	dashboardHandler *handlers.DashboardHandler,
	requestHandler *handlers.OnsiteRequestHandler,
	customerHandler *handlers.CustomerHandler,
	quoteHandler *handlers.QuoteHandler,
) {
	// The login screen is the only public screen; an authenticated operator
	// visiting it lands on the dashboard instead.
	router.GET("/", middleware.RedirectAuthenticated(store), authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	protected := router.Group("/", middleware.RequireAuth(store))

	protected.GET("/dashboard", dashboardHandler.Show)

	requests := protected.Group(PathRequests)
	{
		requests.GET("/list", requestHandler.List)
		requests.GET("/form", requestHandler.Form)
		requests.POST("/form", requestHandler.Create)
		requests.GET("/edit", requestHandler.Edit)
		requests.POST("/edit", requestHandler.Update)
		requests.GET("/detail", requestHandler.Detail)
		requests.POST("/status", requestHandler.UpdateStatus)
		requests.POST("/delete", requestHandler.Delete)
		requests.GET("/export", requestHandler.Export)
	}

	customers := protected.Group(PathCustomers)
	{
		customers.GET("/list", customerHandler.List)
		customers.POST("/create", customerHandler.Create)
		customers.POST("/update", customerHandler.Update)
		customers.POST("/delete", customerHandler.Delete)
		customers.GET("/export", customerHandler.Export)
	}

	quotes := protected.Group(PathQuotes)
	{
		quotes.GET("/list", quoteHandler.List)
		quotes.GET("/by-number", quoteHandler.ByNumber)
		quotes.POST("/create", quoteHandler.Create)
		quotes.POST("/update", quoteHandler.Update)
		quotes.POST("/delete", quoteHandler.Delete)
		quotes.GET("/export", quoteHandler.Export)
	}

	// Unknown paths land on the login screen; the guard forwards
	// authenticated operators on to the dashboard from there.
	router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}
