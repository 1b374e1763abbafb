package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Vitals9367/xamarin-eshop-api/middleware"
	"github.com/Vitals9367/xamarin-eshop-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	ItemID         uint   `json:"item_id" binding:"required"`
	SelectedSize   string `json:"selectedSize" binding:"required"`
	SelectedAmount int    `json:"selectedAmount" binding:"required,min=1"`
}

type DeleteCartItemInput struct {
	ItemID uint `json:"item_id" binding:"required"` // cart item id
}

// GET /user/cart_items
func GetCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var cart models.Cart
		if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "User cart not found"})
			return
		}

		items := []models.CartItem{}
		if err := db.Preload("DefinedItem.Item").
			Where("cart_id = ?", cart.ID).
			Order("date_added").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart items"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// POST /product/addtocart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "item_id, selectedSize and selectedAmount are required"})
			return
		}

		var item models.Item
		if err := db.First(&item, input.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Item does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to validate item"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "User cart not found"})
			return
		}

		// Identical (item, size) entries are not merged; every add
		// appends a fresh variant row.
		err := db.Transaction(func(tx *gorm.DB) error {
			defined := models.DefinedItem{
				ItemID: item.ID,
				Size:   input.SelectedSize,
				Amount: input.SelectedAmount,
			}
			if err := tx.Create(&defined).Error; err != nil {
				return err
			}
			return tx.Create(&models.CartItem{
				CartID:        cart.ID,
				DefinedItemID: defined.ID,
				DateAdded:     time.Now().UTC(),
			}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item was added to cart!"})
	}
}

// DELETE /user/delete_cart_item
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input DeleteCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "item_id is required"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "User cart not found"})
			return
		}

		var cartItem models.CartItem
		if err := db.Where("id = ? AND cart_id = ?", input.ItemID, cart.ID).First(&cartItem).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Cart item not found"})
			return
		}

		// The variant row belongs to this cart item alone, so it goes too.
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&cartItem).Error; err != nil {
				return err
			}
			return tx.Delete(&models.DefinedItem{}, cartItem.DefinedItemID).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted!"})
	}
}
