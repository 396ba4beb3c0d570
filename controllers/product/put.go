package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tornelo-labs/commerce-api/logger"
	"github.com/tornelo-labs/commerce-api/models"
	"gorm.io/gorm"
)

type updateProductInput struct {
	ProdName    *string  `json:"prodName"`
	ProdDesc    *string  `json:"prodDesc"`
	ProdCost    *float64 `json:"prodCost"`
	ProdVariant *string  `json:"prodVariant"`
	StockCount  *int     `json:"stockCount"`
	ProdImg     []string `json:"prodImg"`
}

// UpdateProduct merges the provided fields into an existing product. Absent
// fields keep their prior values. Accepts a JSON body, or a multipart form
// with optional replacement "prodImages" files.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		// Reject before mutating anything
		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			if !applyProductForm(c, &product) {
				return
			}
		} else {
			var input updateProductInput
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
			applyProductJSON(&product, input)
		}

		if err := db.Save(&product).Error; err != nil {
			logger.Log.Errorw("product update failed", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func applyProductJSON(product *models.Product, input updateProductInput) {
	if input.ProdName != nil {
		product.ProdName = *input.ProdName
	}
	if input.ProdDesc != nil {
		product.ProdDesc = *input.ProdDesc
	}
	if input.ProdCost != nil {
		product.ProdCost = *input.ProdCost
	}
	if input.ProdVariant != nil {
		product.ProdVariant = *input.ProdVariant
	}
	if input.StockCount != nil {
		product.StockCount = *input.StockCount
	}
	if input.ProdImg != nil {
		product.ProdImg = input.ProdImg
	}
}

// applyProductForm merges multipart form fields and any replacement images.
// Returns false after writing an error response.
func applyProductForm(c *gin.Context, product *models.Product) bool {
	if v := c.PostForm("prodName"); v != "" {
		product.ProdName = v
	}
	if v := c.PostForm("prodDesc"); v != "" {
		product.ProdDesc = v
	}
	if v := c.PostForm("prodVariant"); v != "" {
		product.ProdVariant = v
	}
	if v := c.PostForm("prodCost"); v != "" {
		cost, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prodCost"})
			return false
		}
		product.ProdCost = cost
	}
	if v := c.PostForm("stockCount"); v != "" {
		sc, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stockCount"})
			return false
		}
		product.StockCount = sc
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return false
	}
	if files := form.File["prodImages"]; len(files) > 0 {
		imageURLs, err := saveProductImages(c, files)
		if err != nil {
			logger.Log.Errorw("product image upload failed", "id", product.ID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
			return false
		}
		product.ProdImg = imageURLs
	}
	return true
}
