package routes

import (
	"github.com/gin-gonic/gin"
	shippingControllers "github.com/tornelo-labs/commerce-api/controllers/shipping"
	"gorm.io/gorm"
)

// SetupShippingRoutes registers all "/api/shipping/*" endpoints.
func SetupShippingRoutes(api *gin.RouterGroup, db *gorm.DB) {
	shipping := api.Group("/shipping")
	{
		shipping.GET("/", shippingControllers.GetAllShippingInfo(db))
		shipping.POST("/", shippingControllers.CreateShippingInfo(db))
		shipping.GET("/:id", shippingControllers.GetShippingInfoByID(db))
		shipping.PUT("/:id", shippingControllers.UpdateShippingInfo(db))
		shipping.DELETE("/:id", shippingControllers.DeleteShippingInfo(db))
	}
}
