package orderControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Vitals9367/xamarin-eshop-api/auth"
	"github.com/Vitals9367/xamarin-eshop-api/models"
	"github.com/Vitals9367/xamarin-eshop-api/routes"
)

func setupOrderTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.UserInfo{}, &models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.DefinedItem{},
		&models.Item{}, &models.ItemType{}, &models.Size{}, &models.Review{},
	))

	r := gin.New()
	r.Use(gin.Recovery())
	routes.SetupRoutes(r, db)
	return r, db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) (models.User, string) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		PublicID: uuid.NewString(),
		Username: username,
		Email:    username + "@example.com",
		Password: string(hash),
	}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.UserInfo{UserID: user.ID}).Error)
	require.NoError(t, db.Create(&models.Cart{UserID: user.ID}).Error)

	token, err := auth.IssueToken(user.PublicID, time.Now().Add(auth.TokenTTL))
	require.NoError(t, err)
	return user, token
}

func doRequest(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf []byte
	if body != nil {
		buf, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-access-token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func addToCart(t *testing.T, r *gin.Engine, token string, itemID uint, size string, amount int) {
	w := doRequest(r, http.MethodPost, "/product/addtocart", token, gin.H{
		"item_id": itemID, "selectedSize": size, "selectedAmount": amount,
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateOrder(t *testing.T) {
	router, db := setupOrderTest(t)
	_, token := createTestUser(t, db, "alice")

	shirt := models.Item{Name: "Shirt", Price: 9.99}
	jeans := models.Item{Name: "Jeans", Price: 25.50}
	require.NoError(t, db.Create(&shirt).Error)
	require.NoError(t, db.Create(&jeans).Error)

	addToCart(t, router, token, shirt.ID, "M", 2)
	addToCart(t, router, token, jeans.ID, "32", 1)

	w := doRequest(router, http.MethodPost, "/user/create_order", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	t.Run("price equals the sum over order items", func(t *testing.T) {
		assert.InDelta(t, 9.99*2+25.50, order.Price, 1e-9)
		require.Len(t, order.Items, 2)

		total := 0.0
		for _, item := range order.Items {
			total += item.DefinedItem.Item.Price * float64(item.DefinedItem.Amount)
		}
		assert.InDelta(t, order.Price, total, 1e-9)
	})

	t.Run("starts unpaid with a creation date", func(t *testing.T) {
		assert.False(t, order.Paid)
		assert.False(t, order.Date.IsZero())
	})

	t.Run("cart items remain after checkout", func(t *testing.T) {
		var count int64
		db.Model(&models.CartItem{}).Count(&count)
		assert.Equal(t, int64(2), count)
	})

	t.Run("order items use fresh variant rows, never the cart's", func(t *testing.T) {
		var cartItems []models.CartItem
		require.NoError(t, db.Find(&cartItems).Error)

		cartDefined := map[uint]bool{}
		for _, ci := range cartItems {
			cartDefined[ci.DefinedItemID] = true
		}

		var orderItems []models.OrderItem
		require.NoError(t, db.Where("order_id = ?", order.ID).Find(&orderItems).Error)
		require.Len(t, orderItems, 2)
		for _, oi := range orderItems {
			assert.False(t, cartDefined[oi.DefinedItemID])
		}
	})
}

func TestCreateOrderEmptyCart(t *testing.T) {
	router, db := setupOrderTest(t)
	_, token := createTestUser(t, db, "alice")

	w := doRequest(router, http.MethodPost, "/user/create_order", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Zero(t, order.Price)
	assert.Empty(t, order.Items)
	assert.False(t, order.Paid)
}

func TestCompleteOrder(t *testing.T) {
	router, db := setupOrderTest(t)
	_, aliceToken := createTestUser(t, db, "alice")
	_, bobToken := createTestUser(t, db, "bob")

	shirt := models.Item{Name: "Shirt", Price: 9.99}
	require.NoError(t, db.Create(&shirt).Error)
	addToCart(t, router, aliceToken, shirt.ID, "M", 1)

	w := doRequest(router, http.MethodPost, "/user/create_order", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	t.Run("marks the order paid", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, fmt.Sprintf("/user/complete_order/%d", order.ID), aliceToken, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var stored models.Order
		require.NoError(t, db.First(&stored, order.ID).Error)
		assert.True(t, stored.Paid)
	})

	t.Run("another user's order is not found", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, fmt.Sprintf("/user/complete_order/%d", order.ID), bobToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown order is not found, never a crash", func(t *testing.T) {
		w := doRequest(router, http.MethodPut, "/user/complete_order/9999", aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteOrder(t *testing.T) {
	router, db := setupOrderTest(t)
	_, aliceToken := createTestUser(t, db, "alice")
	_, bobToken := createTestUser(t, db, "bob")

	shirt := models.Item{Name: "Shirt", Price: 9.99}
	require.NoError(t, db.Create(&shirt).Error)
	addToCart(t, router, aliceToken, shirt.ID, "M", 1)

	w := doRequest(router, http.MethodPost, "/user/create_order", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))

	t.Run("another user's order is a bad request", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/user/delete_order", bobToken, gin.H{"item_id": order.ID})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing order id is a bad request", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/user/delete_order", aliceToken, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("deletes the order and its items", func(t *testing.T) {
		w := doRequest(router, http.MethodDelete, "/user/delete_order", aliceToken, gin.H{"item_id": order.ID})
		assert.Equal(t, http.StatusOK, w.Code)

		var orderCount, itemCount int64
		db.Model(&models.Order{}).Count(&orderCount)
		db.Model(&models.OrderItem{}).Count(&itemCount)
		assert.Equal(t, int64(0), orderCount)
		assert.Equal(t, int64(0), itemCount)
	})
}

func TestGetUserOrders(t *testing.T) {
	router, db := setupOrderTest(t)
	_, token := createTestUser(t, db, "alice")

	shirt := models.Item{Name: "Shirt", Price: 9.99}
	require.NoError(t, db.Create(&shirt).Error)
	addToCart(t, router, token, shirt.ID, "M", 3)

	w := doRequest(router, http.MethodPost, "/user/create_order", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/user/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Shirt", orders[0].Items[0].DefinedItem.Item.Name)
	assert.Equal(t, 3, orders[0].Items[0].DefinedItem.Amount)
}
