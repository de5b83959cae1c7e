package main

import (
	_ "github.com/Fikriansyah-12/habitus-fe/docs"
	"github.com/Fikriansyah-12/habitus-fe/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Habitus Admin Console
// @version         1.0
// @description     Login-gated admin console for customers, quotes and onsite service requests, backed by the Habitus REST API.

// @contact.name   Habitus Support

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the backend session token.

func main() {
	routes.Run()
}
