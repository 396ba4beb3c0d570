package completedOrderControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tornelo-labs/commerce-api/logger"
	"github.com/tornelo-labs/commerce-api/models"
	"gorm.io/gorm"
)

type CompletedOrderInput struct {
	UserID       uint    `json:"userId"`
	ProdID       uint    `json:"prodId" binding:"required"`
	ProdName     string  `json:"prodName" binding:"required"`
	ProdQuantity int     `json:"prodQuantity" binding:"required,min=1"`
	ProdCost     float64 `json:"prodCost"`
}

type completedOrderUpdateInput struct {
	UserID       *uint    `json:"userId"`
	ProdID       *uint    `json:"prodId"`
	ProdName     *string  `json:"prodName"`
	ProdQuantity *int     `json:"prodQuantity"`
	ProdCost     *float64 `json:"prodCost"`
}

// generateOrderRef returns a sortable unique order reference.
// Example: 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// GET /completedOrders
func GetAllCompletedOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.CompletedOrder
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch completed orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /completedOrders/:id
func GetCompletedOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.CompletedOrder
		if err := db.First(&order, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Completed order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch completed order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// POST /completedOrders
func CreateCompletedOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CompletedOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order := models.CompletedOrder{
			OrderRef:     generateOrderRef(),
			UserID:       input.UserID,
			ProdID:       input.ProdID,
			ProdName:     input.ProdName,
			ProdQuantity: input.ProdQuantity,
			ProdCost:     input.ProdCost,
		}
		if err := db.Create(&order).Error; err != nil {
			logger.Log.Errorw("completed order create failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create completed order"})
			return
		}

		broadcastCompletedOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

// PUT /completedOrders/:id
func UpdateCompletedOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.CompletedOrder
		if err := db.First(&order, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Completed order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch completed order"})
			}
			return
		}

		var input completedOrderUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.UserID != nil {
			order.UserID = *input.UserID
		}
		if input.ProdID != nil {
			order.ProdID = *input.ProdID
		}
		if input.ProdName != nil {
			order.ProdName = *input.ProdName
		}
		if input.ProdQuantity != nil {
			order.ProdQuantity = *input.ProdQuantity
		}
		if input.ProdCost != nil {
			order.ProdCost = *input.ProdCost
		}

		if err := db.Save(&order).Error; err != nil {
			logger.Log.Errorw("completed order update failed", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update completed order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /completedOrders/:id
func DeleteCompletedOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.CompletedOrder
		if err := db.First(&order, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Completed order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch completed order"})
			}
			return
		}

		if err := db.Delete(&order).Error; err != nil {
			logger.Log.Errorw("completed order delete failed", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete completed order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
