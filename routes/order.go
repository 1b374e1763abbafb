package routes

import (
	orderControllers "github.com/Vitals9367/xamarin-eshop-api/controllers/order"
	"github.com/Vitals9367/xamarin-eshop-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers the order workflow. All of it requires a token.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/user")
	orders.Use(middleware.TokenRequired(db))
	{
		orders.POST("/create_order", orderControllers.CreateOrder(db))
		orders.PUT("/complete_order/:id", orderControllers.CompleteOrder(db))
		orders.DELETE("/delete_order", orderControllers.DeleteOrder(db))
		orders.GET("/orders", orderControllers.GetUserOrders(db))
	}
}
