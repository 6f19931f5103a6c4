package routes

import (
	"idea_api/internal/adapter/http/handlers"
	"idea_api/internal/adapter/http/middleware"
	"idea_api/internal/infrastructure/security"

	"github.com/gin-gonic/gin"
)

const PathOrders = "/orders"

func addOrderingRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderingHandler, access security.AccessManager) {
	orders := rg.Group(PathOrders, middleware.RequireRole(access, security.RoleOrdering))
	{
		orders.GET("/", orderHandler.GetAllOrders)
		orders.GET("/srf/:srf_number", orderHandler.GetOrderBySRF)
		orders.GET("/order/:order_number", orderHandler.GetOrderByOrderNumber)
		orders.GET("/status/:order_status", orderHandler.GetOrderByStatus)
		orders.GET("/track/:order_number", orderHandler.GetTrackingLink)
	}
}
