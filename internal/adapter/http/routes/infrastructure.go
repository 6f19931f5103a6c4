package routes

import (
	"idea_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathInfrastructure = "/infrastructure"

func addInfrastructureRoutes(rg *gin.RouterGroup, infraHandler *handlers.InfrastructureHandler) {
	infrastructure := rg.Group(PathInfrastructure)
	{
		infrastructure.GET("/all", infraHandler.GetAll)
		// Read-only filter query; POST only because the filter payload
		// travels in the body.
		infrastructure.POST("/vms", infraHandler.QueryVMs)
	}
}
