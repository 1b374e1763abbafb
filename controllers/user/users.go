package userControllers

import (
	"net/http"

	"github.com/Vitals9367/xamarin-eshop-api/middleware"
	"github.com/Vitals9367/xamarin-eshop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateUserInfoInput struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
}

// GET /user
func GetUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := middleware.CurrentUser(c)

		var user models.User
		if err := db.Preload("Info").
			Preload("Cart.Items.DefinedItem.Item").
			Preload("Orders").
			First(&user, current.ID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := []models.User{}
		if err := db.Select("id", "public_id", "username", "email", "is_admin").
			Order("id").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// GET /user/:public_id
func GetUserByPublicID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.Where("public_id = ?", c.Param("public_id")).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /users/check/:username
func CheckUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.Where("username = ?", c.Param("username")).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// GET /user/info
func GetUserInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var info models.UserInfo
		if err := db.Where("user_id = ?", user.ID).First(&info).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User info not found"})
			return
		}

		c.JSON(http.StatusOK, info)
	}
}

// PUT /user/info
func UpdateUserInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var info models.UserInfo
		if err := db.Where("user_id = ?", user.ID).First(&info).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User info not found"})
			return
		}

		var input UpdateUserInfoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
			return
		}

		updates := make(map[string]interface{})
		if input.FirstName != nil {
			updates["first_name"] = *input.FirstName
		}
		if input.LastName != nil {
			updates["last_name"] = *input.LastName
		}
		if input.PhoneNumber != nil {
			updates["phone_number"] = *input.PhoneNumber
		}
		if input.Address != nil {
			updates["address"] = *input.Address
		}

		if len(updates) > 0 {
			if err := db.Model(&info).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user info"})
				return
			}
		}

		c.JSON(http.StatusOK, info)
	}
}
