package routes

import (
	"github.com/Vitals9367/xamarin-eshop-api/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers registration and login.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/users", auth.Register(db))
	r.GET("/login", auth.Login(db))
}
