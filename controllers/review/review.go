package reviewControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Vitals9367/xamarin-eshop-api/middleware"
	"github.com/Vitals9367/xamarin-eshop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateReviewInput struct {
	ItemID  uint   `json:"item_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1"`
	Comment string `json:"comment" binding:"required"`
}

// GetProductReviews lists the reviews for an item. An item with zero
// reviews answers 404, not an empty list.
// GET /reviews/product/:id
func GetProductReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item id"})
			return
		}

		var reviews []models.Review
		if err := db.Where("item_id = ?", id).Order("date DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reviews"})
			return
		}

		if len(reviews) == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "No reviews found!"})
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}

// POST /create_review
func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input CreateReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "item_id, rating and comment are required"})
			return
		}

		var item models.Item
		if err := db.First(&item, input.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Item not found!"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to validate item"})
			return
		}

		review := models.Review{
			UserID:  user.ID,
			ItemID:  item.ID,
			Comment: input.Comment,
			Rating:  input.Rating,
			Date:    time.Now().UTC(),
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create review"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review created!"})
	}
}
