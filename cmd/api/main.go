package main

import (
	_ "idea_api/docs"
	"idea_api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           iDEA Reporting API
// @version         1.0
// @description     Read-only reporting API over infrastructure VM costs and SRF order tracking.

// @host localhost:8000

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
