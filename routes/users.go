package routes

import (
	"github.com/gin-gonic/gin"
	userControllers "github.com/tornelo-labs/commerce-api/controllers/user"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/api/user/*" endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	users := api.Group("/user")
	{
		users.GET("/", userControllers.GetAllUsers(db))
		users.POST("/", userControllers.CreateUser(db))
		users.GET("/:id", userControllers.GetUserByID(db))
		users.PUT("/:id", userControllers.UpdateUser(db))
		users.DELETE("/:id", userControllers.DeleteUser(db))
		users.GET("/search/:search", userControllers.SearchUsers(db))
	}
}
