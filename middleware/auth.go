package middleware

import (
	"errors"
	"net/http"
	"os"

	"github.com/Vitals9367/xamarin-eshop-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const currentUserKey = "current_user"

// TokenRequired gates protected endpoints. It reads the bearer token
// from the x-access-token header, verifies signature and expiry,
// resolves the owning user by the public_id claim and puts it on the
// context. Every verification failure is folded into one generic 401.
func TokenRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("x-access-token")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is missing!"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected token signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			invalidToken(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			invalidToken(c)
			return
		}
		publicID, ok := claims["public_id"].(string)
		if !ok || publicID == "" {
			invalidToken(c)
			return
		}

		var user models.User
		if err := db.Where("public_id = ?", publicID).First(&user).Error; err != nil {
			invalidToken(c)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func invalidToken(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is invalid!"})
}

// CurrentUser returns the user resolved by TokenRequired.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(currentUserKey).(models.User)
}
