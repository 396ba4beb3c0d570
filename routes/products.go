package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/tornelo-labs/commerce-api/controllers/product"
	"gorm.io/gorm"
)

// SetupProductRoutes registers all "/api/products/*" endpoints.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("/", productControllers.GetProducts(db))
		products.POST("/", productControllers.CreateProduct(db))
		products.GET("/:id", productControllers.GetProductByID(db))
		products.PUT("/:id", productControllers.UpdateProduct(db))
		products.DELETE("/:id", productControllers.DeleteProduct(db))

		// Filters
		products.GET("/search/:search", productControllers.SearchProducts(db))
		products.GET("/cost/:min_cost/:max_cost", productControllers.ProductsByCostRange(db))
		products.GET("/variant/:variant", productControllers.ProductsByVariant(db))
		products.GET("/createdAt/:createdAt", productControllers.ProductsByCreationDate(db))

		// Admin export
		products.GET("/export/excel", productControllers.ExportProductsToExcel(db))
	}
}
