package routes

import (
	"github.com/gin-gonic/gin"
	analyticsControllers "github.com/tornelo-labs/commerce-api/controllers/analytics"
	"gorm.io/gorm"
)

// SetupAnalyticsRoutes registers all "/api/analytics/*" endpoints.
func SetupAnalyticsRoutes(api *gin.RouterGroup, db *gorm.DB) {
	analytics := api.Group("/analytics")
	{
		analytics.GET("/", analyticsControllers.GetAllAnalytics(db))
		analytics.POST("/", analyticsControllers.CreateAnalytics(db))
		analytics.GET("/:id", analyticsControllers.GetAnalyticsByID(db))
		analytics.PUT("/:id", analyticsControllers.UpdateAnalytics(db))
		analytics.DELETE("/:id", analyticsControllers.DeleteAnalytics(db))
	}
}
