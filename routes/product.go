package routes

import (
	cartControllers "github.com/Vitals9367/xamarin-eshop-api/controllers/cart"
	productcontroller "github.com/Vitals9367/xamarin-eshop-api/controllers/product"
	reviewControllers "github.com/Vitals9367/xamarin-eshop-api/controllers/review"
	"github.com/Vitals9367/xamarin-eshop-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the public catalog plus the protected
// cart-add, review and admin catalog endpoints.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/product/:id", productcontroller.GetProductByID(db))
	r.GET("/sizes", productcontroller.GetSizes(db))
	r.GET("/image", productcontroller.GetImage())
	r.GET("/reviews/product/:id", reviewControllers.GetProductReviews(db))

	protected := r.Group("")
	protected.Use(middleware.TokenRequired(db))
	{
		protected.POST("/product/addtocart", cartControllers.AddToCart(db))
		protected.POST("/create_review", reviewControllers.CreateReview(db))

		// Admin catalog management (flag checked in the handlers).
		protected.POST("/products", productcontroller.CreateProduct(db))
		protected.GET("/products/export", productcontroller.ExportProductsToExcel(db))
	}
}
