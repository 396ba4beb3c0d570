package analyticsControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tornelo-labs/commerce-api/logger"
	"github.com/tornelo-labs/commerce-api/models"
	"gorm.io/gorm"
)

type AnalyticsInput struct {
	Name       string    `json:"name" binding:"required"`
	Amount     float64   `json:"amount"`
	TotalSales float64   `json:"totalSales"`
	Views      int       `json:"views"`
	Uptakes    int       `json:"uptakes"`
	Month      time.Time `json:"month" binding:"required"`
}

type analyticsUpdateInput struct {
	Name       *string    `json:"name"`
	Amount     *float64   `json:"amount"`
	TotalSales *float64   `json:"totalSales"`
	Views      *int       `json:"views"`
	Uptakes    *int       `json:"uptakes"`
	Month      *time.Time `json:"month"`
}

// GET /analytics
func GetAllAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var records []models.AnalyticsRecord
		if err := db.Find(&records).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics data"})
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// GET /analytics/:id
func GetAnalyticsByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analytics ID"})
			return
		}

		var record models.AnalyticsRecord
		if err := db.First(&record, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Analytics Data not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics data"})
			}
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// POST /analytics
func CreateAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AnalyticsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		record := models.AnalyticsRecord{
			Name:       input.Name,
			Amount:     input.Amount,
			TotalSales: input.TotalSales,
			Views:      input.Views,
			Uptakes:    input.Uptakes,
			Month:      input.Month,
		}
		if err := db.Create(&record).Error; err != nil {
			logger.Log.Errorw("analytics create failed", "name", input.Name, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create analytics data"})
			return
		}
		c.JSON(http.StatusCreated, record)
	}
}

// PUT /analytics/:id
func UpdateAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analytics ID"})
			return
		}

		var record models.AnalyticsRecord
		if err := db.First(&record, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics data"})
			}
			return
		}

		var input analyticsUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			record.Name = *input.Name
		}
		if input.Amount != nil {
			record.Amount = *input.Amount
		}
		if input.TotalSales != nil {
			record.TotalSales = *input.TotalSales
		}
		if input.Views != nil {
			record.Views = *input.Views
		}
		if input.Uptakes != nil {
			record.Uptakes = *input.Uptakes
		}
		if input.Month != nil {
			record.Month = *input.Month
		}

		if err := db.Save(&record).Error; err != nil {
			logger.Log.Errorw("analytics update failed", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update analytics data"})
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// DELETE /analytics/:id
func DeleteAnalytics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analytics ID"})
			return
		}

		var record models.AnalyticsRecord
		if err := db.First(&record, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics data"})
			}
			return
		}

		if err := db.Delete(&record).Error; err != nil {
			logger.Log.Errorw("analytics delete failed", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete analytics data"})
			return
		}
		c.JSON(http.StatusOK, record)
	}
}
