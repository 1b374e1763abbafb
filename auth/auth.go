package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/Vitals9367/xamarin-eshop-api/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Tokens expire after 30 minutes; there is no refresh mechanism.
const TokenTTL = 30 * time.Minute

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /users
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username, email and password are required"})
			return
		}

		var existing models.User
		err := db.Where("username = ?", input.Username).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists!"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
			return
		}

		// The user, its empty profile and its cart are created together
		// and cascade-deleted together.
		user := models.User{
			PublicID: uuid.NewString(),
			Username: input.Username,
			Email:    input.Email,
			Password: string(hashed),
			IsAdmin:  false,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.UserInfo{UserID: user.ID}).Error; err != nil {
				return err
			}
			return tx.Create(&models.Cart{UserID: user.ID}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User created!"})
	}
}

// GET /login — HTTP Basic credentials in, bearer token out.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok || username == "" || password == "" {
			couldNotVerify(c)
			return
		}

		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			couldNotVerify(c)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
			couldNotVerify(c)
			return
		}

		token, err := IssueToken(user.PublicID, time.Now().Add(TokenTTL))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func couldNotVerify(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="login required"`)
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Could not verify"})
}

// IssueToken signs an HS256 bearer token carrying the user's public id
// and the given expiry.
func IssueToken(publicID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"public_id": publicID,
		"exp":       expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
