package shippingControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tornelo-labs/commerce-api/logger"
	"github.com/tornelo-labs/commerce-api/models"
	"gorm.io/gorm"
)

type ShippingInput struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	PostCode string `json:"postCode"`
	State    string `json:"state"`
	UserID   uint   `json:"userId"`
}

type shippingUpdateInput struct {
	Name     *string `json:"name"`
	Address  *string `json:"address"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	PostCode *string `json:"postCode"`
	State    *string `json:"state"`
	UserID   *uint   `json:"userId"`
}

// findShipping loads a record by its dedicated shipping identifier, which is
// the key the routes expose rather than a shared row id.
func findShipping(db *gorm.DB, shippingID int) (*models.ShippingInfo, error) {
	var info models.ShippingInfo
	if err := db.Where("shipping_id = ?", shippingID).First(&info).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// GET /shipping
func GetAllShippingInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var records []models.ShippingInfo
		if err := db.Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping information"})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// GET /shipping/:id
func GetShippingInfoByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipping ID"})
			return
		}

		info, err := findShipping(db, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping information"})
			}
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

// POST /shipping
func CreateShippingInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ShippingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		info := models.ShippingInfo{
			Name:     input.Name,
			Address:  input.Address,
			Email:    input.Email,
			Phone:    input.Phone,
			PostCode: input.PostCode,
			State:    input.State,
			UserID:   input.UserID,
		}
		if err := db.Create(&info).Error; err != nil {
			logger.Log.Errorw("shipping create failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shipping information"})
			return
		}
		c.JSON(http.StatusCreated, info)
	}
}

// PUT /shipping/:id
func UpdateShippingInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipping ID"})
			return
		}

		info, err := findShipping(db, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping information"})
			}
			return
		}

		var input shippingUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			info.Name = *input.Name
		}
		if input.Address != nil {
			info.Address = *input.Address
		}
		if input.Email != nil {
			info.Email = *input.Email
		}
		if input.Phone != nil {
			info.Phone = *input.Phone
		}
		if input.PostCode != nil {
			info.PostCode = *input.PostCode
		}
		if input.State != nil {
			info.State = *input.State
		}
		if input.UserID != nil {
			info.UserID = *input.UserID
		}

		if err := db.Save(info).Error; err != nil {
			logger.Log.Errorw("shipping update failed", "shippingId", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shipping information"})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

// DELETE /shipping/:id
func DeleteShippingInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid shipping ID"})
			return
		}

		info, err := findShipping(db, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping information"})
			}
			return
		}

		if err := db.Delete(info).Error; err != nil {
			logger.Log.Errorw("shipping delete failed", "shippingId", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shipping information"})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}
