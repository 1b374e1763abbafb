package routes

import (
	cartControllers "github.com/Vitals9367/xamarin-eshop-api/controllers/cart"
	userControllers "github.com/Vitals9367/xamarin-eshop-api/controllers/user"
	"github.com/Vitals9367/xamarin-eshop-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers user projections and the token-protected
// profile and cart endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// Public projections (password hash is never serialized).
	r.GET("/users", userControllers.GetAllUsers(db))
	r.GET("/users/check/:username", userControllers.CheckUser(db))
	r.GET("/user/:public_id", userControllers.GetUserByPublicID(db))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.TokenRequired(db))
	{
		userGroup.GET("", userControllers.GetUser(db))
		userGroup.GET("/info", userControllers.GetUserInfo(db))
		userGroup.PUT("/info", userControllers.UpdateUserInfo(db))

		userGroup.GET("/cart_items", cartControllers.GetCartItems(db))
		userGroup.DELETE("/delete_cart_item", cartControllers.DeleteCartItem(db))
	}
}
