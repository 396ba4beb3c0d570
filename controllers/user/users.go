package userControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tornelo-labs/commerce-api/logger"
	"github.com/tornelo-labs/commerce-api/models"
	"gorm.io/gorm"
)

type UserInput struct {
	UserEmail     string `json:"userEmail" binding:"required,email"`
	UserAddress   string `json:"userAddress"`
	UserPhoneNo   string `json:"userPhoneNo"`
	UserFirstName string `json:"userFirstName"`
	UserLastName  string `json:"userLastName"`
	UserPassword  string `json:"userPassword"`
}

type userUpdateInput struct {
	UserEmail     *string `json:"userEmail"`
	UserAddress   *string `json:"userAddress"`
	UserPhoneNo   *string `json:"userPhoneNo"`
	UserFirstName *string `json:"userFirstName"`
	UserLastName  *string `json:"userLastName"`
	UserPassword  *string `json:"userPassword"`
}

// GET /user
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /user/:id
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			}
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /user
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := models.User{
			UserEmail:     input.UserEmail,
			UserAddress:   input.UserAddress,
			UserPhoneNo:   input.UserPhoneNo,
			UserFirstName: input.UserFirstName,
			UserLastName:  input.UserLastName,
			UserPassword:  input.UserPassword,
		}
		if err := db.Create(&user).Error; err != nil {
			logger.Log.Errorw("user create failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// PUT /user/:id
func UpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			}
			return
		}

		var input userUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.UserEmail != nil {
			user.UserEmail = *input.UserEmail
		}
		if input.UserAddress != nil {
			user.UserAddress = *input.UserAddress
		}
		if input.UserPhoneNo != nil {
			user.UserPhoneNo = *input.UserPhoneNo
		}
		if input.UserFirstName != nil {
			user.UserFirstName = *input.UserFirstName
		}
		if input.UserLastName != nil {
			user.UserLastName = *input.UserLastName
		}
		if input.UserPassword != nil {
			user.UserPassword = *input.UserPassword
		}

		if err := db.Save(&user).Error; err != nil {
			logger.Log.Errorw("user update failed", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// DELETE /user/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			}
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			logger.Log.Errorw("user delete failed", "id", id, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// SearchUsers matches users whose email contains the search term.
// URL param: /user/search/:search
func SearchUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Param("search")
		likePattern := "%" + search + "%"

		var users []models.User
		if err := db.Where("user_email LIKE ?", likePattern).Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
