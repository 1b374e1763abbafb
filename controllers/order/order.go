package orderControllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Vitals9367/xamarin-eshop-api/middleware"
	"github.com/Vitals9367/xamarin-eshop-api/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type DeleteOrderInput struct {
	ItemID uint `json:"item_id" binding:"required"` // order id
}

// POST /user/create_order
//
// Builds the whole order inside one transaction: fresh DefinedItem
// rows are copied from the cart rows, order items are attached, and
// the order is persisted with its final price in a single commit. An
// empty cart still produces an order with price 0. Cart items stay in
// the cart afterwards.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var cart models.Cart
		if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "User cart not found"})
			return
		}

		var cartItems []models.CartItem
		if err := db.Preload("DefinedItem.Item").
			Where("cart_id = ?", cart.ID).
			Find(&cartItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart items"})
			return
		}

		order := models.Order{
			UserID: user.ID,
			Date:   time.Now().UTC(),
			Paid:   false,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			total := decimal.Zero
			items := make([]models.OrderItem, 0, len(cartItems))

			for _, ci := range cartItems {
				defined := models.DefinedItem{
					ItemID: ci.DefinedItem.ItemID,
					Size:   ci.DefinedItem.Size,
					Amount: ci.DefinedItem.Amount,
				}
				if err := tx.Create(&defined).Error; err != nil {
					return err
				}

				items = append(items, models.OrderItem{
					DefinedItemID: defined.ID,
					DateAdded:     time.Now().UTC(),
				})

				total = total.Add(
					decimal.NewFromFloat(ci.DefinedItem.Item.Price).
						Mul(decimal.NewFromInt(int64(ci.DefinedItem.Amount))))
			}

			order.Items = items
			order.Price = total.InexactFloat64()
			return tx.Create(&order).Error
		})
		if err != nil {
			logger.Error().Err(err).Uint("cart_id", cart.ID).Msg("order creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
			return
		}

		if err := db.Preload("Items.DefinedItem.Item").First(&order, order.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PUT /user/complete_order/:id
func CompleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		orderID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order id"})
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", orderID, user.ID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch order"})
			return
		}

		if err := db.Model(&order).Update("paid", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to complete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order completed!"})
	}
}

// DELETE /user/delete_order
func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input DeleteOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "item_id is required"})
			return
		}

		var order models.Order
		if err := db.Where("id = ? AND user_id = ?", input.ItemID, user.ID).First(&order).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Order not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var items []models.OrderItem
			if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
				return err
			}
			for _, item := range items {
				if err := tx.Delete(&models.DefinedItem{}, item.DefinedItemID).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			logger.Error().Err(err).Uint("order_id", order.ID).Msg("order deletion failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted!"})
	}
}

// GET /user/orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		orders := []models.Order{}
		if err := db.Preload("Items.DefinedItem.Item").
			Where("user_id = ?", user.ID).
			Order("date DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
