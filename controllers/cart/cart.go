package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tornelo-labs/commerce-api/logger"
	"github.com/tornelo-labs/commerce-api/models"
	"gorm.io/gorm"
)

type CartItemInput struct {
	UserID       uint     `json:"userId"`
	ProdID       uint     `json:"prodId" binding:"required"`
	ProdName     string   `json:"prodName" binding:"required"`
	ProdQuantity int      `json:"prodQuantity" binding:"required,min=1"`
	ProdCost     float64  `json:"prodCost"`
	ProdImg      []string `json:"prodImg"`
}

type cartItemUpdateInput struct {
	UserID       *uint    `json:"userId"`
	ProdID       *uint    `json:"prodId"`
	ProdName     *string  `json:"prodName"`
	ProdQuantity *int     `json:"prodQuantity"`
	ProdCost     *float64 `json:"prodCost"`
	ProdImg      []string `json:"prodImg"`
}

// GET /shoppingCart
func GetShoppingCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.ShoppingCartItem
		if err := db.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shopping cart"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GET /shoppingCart/:id
func GetShoppingCartItemByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var item models.ShoppingCartItem
		if err := db.First(&item, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Shopping cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			}
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// POST /shoppingCart
func CreateShoppingCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := models.ShoppingCartItem{
			UserID:       input.UserID,
			ProdID:       input.ProdID,
			ProdName:     input.ProdName,
			ProdQuantity: input.ProdQuantity,
			ProdCost:     input.ProdCost,
			ProdImg:      input.ProdImg,
		}
		if err := db.Create(&item).Error; err != nil {
			logger.Log.Errorw("cart item create failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /shoppingCart/:id
func UpdateShoppingCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var item models.ShoppingCartItem
		if err := db.First(&item, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Shopping cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			}
			return
		}

		var input cartItemUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.UserID != nil {
			item.UserID = *input.UserID
		}
		if input.ProdID != nil {
			item.ProdID = *input.ProdID
		}
		if input.ProdName != nil {
			item.ProdName = *input.ProdName
		}
		if input.ProdQuantity != nil {
			item.ProdQuantity = *input.ProdQuantity
		}
		if input.ProdCost != nil {
			item.ProdCost = *input.ProdCost
		}
		if input.ProdImg != nil {
			item.ProdImg = input.ProdImg
		}

		if err := db.Save(&item).Error; err != nil {
			logger.Log.Errorw("cart item update failed", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /shoppingCart/:id
func DeleteShoppingCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var item models.ShoppingCartItem
		if err := db.First(&item, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Shopping cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			}
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			logger.Log.Errorw("cart item delete failed", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
