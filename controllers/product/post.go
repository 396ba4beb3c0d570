package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tornelo-labs/commerce-api/logger"
	"github.com/tornelo-labs/commerce-api/models"
	"gorm.io/gorm"
)

// CreateProduct creates a new product from a multipart form: text fields plus
// one or more "prodImages" files.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		prodName := c.PostForm("prodName")
		prodCostStr := c.PostForm("prodCost")
		if prodName == "" || prodCostStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "prodName and prodCost are required"})
			return
		}

		// Optional fields
		prodDesc := c.PostForm("prodDesc")
		prodVariant := c.PostForm("prodVariant")
		stockCountStr := c.PostForm("stockCount")

		prodCost, err := strconv.ParseFloat(prodCostStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prodCost"})
			return
		}

		var stockCount int
		if stockCountStr != "" {
			if sc, parseErr := strconv.Atoi(stockCountStr); parseErr == nil {
				stockCount = sc
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stockCount"})
				return
			}
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}
		files := form.File["prodImages"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image files provided"})
			return
		}

		imageURLs, err := saveProductImages(c, files)
		if err != nil {
			logger.Log.Errorw("product image upload failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
			return
		}

		newProduct := models.Product{
			ProdName:    prodName,
			ProdDesc:    prodDesc,
			ProdCost:    prodCost,
			ProdVariant: prodVariant,
			ProdImg:     imageURLs,
			StockCount:  stockCount,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			logger.Log.Errorw("product create failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
