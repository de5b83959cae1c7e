package routes

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Fikriansyah-12/habitus-fe/docs" // This will be auto-generated
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/handlers"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/middleware"
	"github.com/Fikriansyah-12/habitus-fe/internal/infrastructure/config"
	"github.com/Fikriansyah-12/habitus-fe/internal/infrastructure/habitus"
	"github.com/Fikriansyah-12/habitus-fe/internal/infrastructure/session"
	"github.com/Fikriansyah-12/habitus-fe/internal/usecase"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err.Error())
	}

	store, err := session.NewStore(cfg.SessionFile)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err.Error())
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, store)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Settings, store *session.Store) {
	base := habitus.NewClient(cfg.APIBaseURL, store, func() {
		log.Printf("[console][session] backend rejected the token, session cleared")
	})

	authUseCase := usecase.NewAuthUseCase(habitus.NewAuthClient(base), store)
	customerUseCase := usecase.NewCustomerUseCase(habitus.NewCustomerClient(base))
	quoteUseCase := usecase.NewQuoteUseCase(habitus.NewQuoteClient(base))
	requestUseCase := usecase.NewOnsiteRequestUseCase(habitus.NewOnsiteRequestClient(base))

	authHandler := handlers.NewAuthHandler(authUseCase)
	dashboardHandler := handlers.NewDashboardHandler(authUseCase, requestUseCase)
	requestHandler := handlers.NewOnsiteRequestHandler(requestUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)

	addConsoleRoutes(router, store, authHandler, dashboardHandler, requestHandler, customerHandler, quoteHandler)
}

func setMiddlewares() {
	router.Use(middleware.RequestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
