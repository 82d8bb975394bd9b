package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/danuartha/warung-pos/controllers"
	"github.com/danuartha/warung-pos/database"
	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/services"
	"github.com/danuartha/warung-pos/utils"
)

var orderDBSeq int

func setupTestStoreForOrders() *database.Store {
	orderDBSeq++
	dsn := fmt.Sprintf("file:ctrlorder%d?mode=memory&cache=shared", orderDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	store := database.NewStore(db)
	if err := store.AutoMigrate(); err != nil {
		panic(err)
	}
	// Seed: satu item katalog untuk diisi ke keranjang
	err = store.PutMenuItem(models.MenuItem{
		ID:       "itm-1",
		Name:     "Nasi Goreng",
		Price:    25000,
		Category: "Makanan",
	})
	if err != nil {
		panic(err)
	}
	return store
}

func setupOrderRouter(store *database.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	basket := services.NewBasketService()
	orders := services.NewOrderService(store, basket)
	stats := services.NewStatsService(store)

	basketCtrl := controllers.NewBasketController(basket, store)
	orderCtrl := controllers.NewOrderController(orders, stats)

	router.POST("/basket/items", basketCtrl.AddToBasket)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders", orderCtrl.GetAllOrders)
	router.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	router.GET("/stats", orderCtrl.GetStats)
	return router
}

func addToBasket(t *testing.T, router *gin.Engine, itemID string) {
	t.Helper()
	payloadBytes, err := json.Marshal(map[string]interface{}{"item_id": itemID})
	assert.NoError(t, err)
	req, err := http.NewRequest("POST", "/basket/items", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func patchStatus(t *testing.T, router *gin.Engine, orderID, status string, confirmed bool) *httptest.ResponseRecorder {
	t.Helper()
	payloadBytes, err := json.Marshal(map[string]interface{}{
		"status":    status,
		"confirmed": confirmed,
	})
	assert.NoError(t, err)
	req, err := http.NewRequest("PATCH", "/orders/"+orderID+"/status", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOrderFlow(t *testing.T) {
	utils.InitLogger()
	store := setupTestStoreForOrders()
	router := setupOrderRouter(store)

	// Keranjang kosong tidak bisa di-commit
	req, err := http.NewRequest("POST", "/orders", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Isi keranjang dua kali dengan item yang sama -> quantity 2
	addToBasket(t, router, "itm-1")
	addToBasket(t, router, "itm-1")

	req, err = http.NewRequest("POST", "/orders", nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &createResp)
	assert.NoError(t, err)
	data := createResp["data"].(map[string]interface{})
	orderID := data["id"].(string)
	assert.Equal(t, 50000.0, data["total"])
	assert.Equal(t, models.OrderStatusYetToPrepare, data["status"])

	// Maju satu langkah
	w = patchStatus(t, router, orderID, models.OrderStatusPreparing, false)
	assert.Equal(t, http.StatusOK, w.Code)

	// Lompat dua langkah ditolak
	w = patchStatus(t, router, orderID, models.OrderStatusSatisfied, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Mundur tanpa konfirmasi -> 409
	w = patchStatus(t, router, orderID, models.OrderStatusYetToPrepare, false)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Mundur dengan konfirmasi -> sah
	w = patchStatus(t, router, orderID, models.OrderStatusYetToPrepare, true)
	assert.Equal(t, http.StatusOK, w.Code)

	// Order tidak dikenal -> 404
	w = patchStatus(t, router, "ord-missing", models.OrderStatusPreparing, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAllOrdersWithFilter(t *testing.T) {
	utils.InitLogger()
	store := setupTestStoreForOrders()
	router := setupOrderRouter(store)

	addToBasket(t, router, "itm-1")
	req, err := http.NewRequest("POST", "/orders", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Cocok lewat nama item, case-insensitive
	req, err = http.NewRequest("GET", "/orders?q=goreng", nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	data := resp["data"].(map[string]interface{})
	assert.Len(t, data["orders"], 1)

	// Query tanpa kecocokan -> list kosong, tetap 200
	req, err = http.NewRequest("GET", "/orders?q=pizza", nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	data = resp["data"].(map[string]interface{})
	assert.Empty(t, data["orders"])
}

func TestStatsEndpoint(t *testing.T) {
	utils.InitLogger()
	store := setupTestStoreForOrders()
	router := setupOrderRouter(store)

	addToBasket(t, router, "itm-1")
	req, err := http.NewRequest("POST", "/orders", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req, err = http.NewRequest("GET", "/stats", nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 25000.0, data["today"])
	assert.Equal(t, 25000.0, data["all_time"])
}
