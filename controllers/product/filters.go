package productcontroller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tornelo-labs/commerce-api/models"
	"gorm.io/gorm"
)

// SearchProducts returns products whose name or description contains the
// search term.
// URL param: /products/search/:search
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Param("search")
		likePattern := "%" + search + "%"

		var products []models.Product
		if err := db.Where("prod_name LIKE ? OR prod_desc LIKE ?", likePattern, likePattern).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// ProductsByCostRange returns products with min_cost <= prodCost <= max_cost,
// both bounds inclusive.
// URL params: /products/cost/:min_cost/:max_cost
func ProductsByCostRange(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		minCost, err := strconv.ParseFloat(c.Param("min_cost"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_cost"})
			return
		}
		maxCost, err := strconv.ParseFloat(c.Param("max_cost"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_cost"})
			return
		}

		var products []models.Product
		if err := db.Where("prod_cost >= ? AND prod_cost <= ?", minCost, maxCost).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// ProductsByVariant returns products whose variant tag matches exactly.
// URL param: /products/variant/:variant
func ProductsByVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		variant := c.Param("variant")

		var products []models.Product
		if err := db.Where("prod_variant = ?", variant).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// ProductsByCreationDate returns products created on the given calendar day.
// The bound is the whole day [00:00, 24:00) in UTC; matching on the full
// timestamp would require millisecond-exact client input and never hit.
// URL param: /products/createdAt/:createdAt (RFC 3339 or 2006-01-02)
func ProductsByCreationDate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("createdAt")
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ts, err = time.Parse("2006-01-02", raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid createdAt"})
				return
			}
		}

		dayStart := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		dayEnd := dayStart.Add(24 * time.Hour)

		var products []models.Product
		if err := db.Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
