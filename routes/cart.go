package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/tornelo-labs/commerce-api/controllers/cart"
	"gorm.io/gorm"
)

// SetupShoppingCartRoutes registers all "/api/shoppingCart/*" endpoints.
func SetupShoppingCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/shoppingCart")
	{
		cart.GET("/", cartControllers.GetShoppingCartItems(db))
		cart.POST("/", cartControllers.CreateShoppingCartItem(db))
		cart.GET("/:id", cartControllers.GetShoppingCartItemByID(db))
		cart.PUT("/:id", cartControllers.UpdateShoppingCartItem(db))
		cart.DELETE("/:id", cartControllers.DeleteShoppingCartItem(db))
	}
}
