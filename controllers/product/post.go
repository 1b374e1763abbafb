package productcontroller

import (
	"net/http"

	"github.com/Vitals9367/xamarin-eshop-api/middleware"
	"github.com/Vitals9367/xamarin-eshop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageFile   string  `json:"image_file"`
	ItemTypeID  *uint   `json:"item_type_id"`
}

// CreateProduct adds a catalog item. Admin only.
// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admin privileges required"})
			return
		}

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "name and price are required"})
			return
		}

		item := models.Item{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			ItemTypeID:  input.ItemTypeID,
		}
		if input.ImageFile != "" {
			item.ImageFile = input.ImageFile
		}

		if input.ItemTypeID != nil {
			var itemType models.ItemType
			if err := db.First(&itemType, *input.ItemTypeID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Item type does not exist"})
				return
			}
		}

		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create item"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}
