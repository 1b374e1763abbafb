package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Vitals9367/xamarin-eshop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProductByID returns a single catalog item with its type.
// URL param: /product/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item id"})
			return
		}

		var item models.Item
		if err := db.Preload("ItemType").First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Item not found!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}
