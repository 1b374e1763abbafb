package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the Auth, User,
// Product and Order route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupAuthRoutes(r, db)
	SetupUserRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupOrderRoutes(r, db)
}
