package productcontroller

import (
	"net/http"

	"github.com/Vitals9367/xamarin-eshop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := []models.Item{}
		if err := db.Preload("ItemType").Order("id").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch items"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// GET /sizes
func GetSizes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sizes := []models.Size{}
		if err := db.Order("id").Find(&sizes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch sizes"})
			return
		}

		c.JSON(http.StatusOK, sizes)
	}
}
