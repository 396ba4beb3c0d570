package routes

import (
	"github.com/gin-gonic/gin"
	completedOrderControllers "github.com/tornelo-labs/commerce-api/controllers/completedorder"
	"gorm.io/gorm"
)

// SetupCompletedOrderRoutes registers all "/api/completedOrders/*" endpoints.
func SetupCompletedOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/completedOrders")
	{
		orders.GET("/", completedOrderControllers.GetAllCompletedOrders(db))
		orders.POST("/", completedOrderControllers.CreateCompletedOrder(db))
		orders.GET("/:id", completedOrderControllers.GetCompletedOrderByID(db))
		orders.PUT("/:id", completedOrderControllers.UpdateCompletedOrder(db))
		orders.DELETE("/:id", completedOrderControllers.DeleteCompletedOrder(db))
	}
}

// SetupOrderFeedRoutes registers the websocket order feed outside the /api
// group so dashboard clients can connect without a session token.
func SetupOrderFeedRoutes(r *gin.Engine) {
	r.GET("/ws/orders", completedOrderControllers.OrderWebSocketHandler)
}
