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
	"github.com/danuartha/warung-pos/services"
	"github.com/danuartha/warung-pos/utils"
)

var menuDBSeq int

func setupTestStoreForMenus() *database.Store {
	menuDBSeq++
	dsn := fmt.Sprintf("file:ctrlmenu%d?mode=memory&cache=shared", menuDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	store := database.NewStore(db)
	if err := store.AutoMigrate(); err != nil {
		panic(err)
	}
	return store
}

func setupMenuRouter(store *database.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	menuCtrl := controllers.NewMenuController(services.NewMenuService(store))
	router.GET("/menu", menuCtrl.GetActiveMenu)
	router.GET("/admin/menu", menuCtrl.GetFullMenu)
	router.POST("/admin/menu", menuCtrl.CreateMenuItem)
	router.PATCH("/admin/menu/:item_id", menuCtrl.UpdateMenuItem)
	router.DELETE("/admin/menu/:item_id", menuCtrl.DeleteMenuItem)
	router.POST("/admin/menu/:item_id/favorite", menuCtrl.ToggleFavorite)
	return router
}

func TestMenuItemCRUD(t *testing.T) {
	utils.InitLogger()
	store := setupTestStoreForMenus()
	router := setupMenuRouter(store)

	// Create: price sengaja dikirim sebagai string, harus dikoersi
	payload := map[string]interface{}{
		"name":     "  Bakso Urat ",
		"price":    "15000",
		"category": "Makanan",
	}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/admin/menu", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &createResp)
	assert.NoError(t, err)

	data, ok := createResp["data"].(map[string]interface{})
	assert.True(t, ok, "data response harus berupa map")
	itemID, ok := data["id"].(string)
	assert.True(t, ok, "item id harus berupa string")
	assert.Equal(t, "Bakso Urat", data["name"])
	assert.Equal(t, 15000.0, data["price"])

	// Update
	updatePayload := map[string]interface{}{
		"name":  "Bakso Spesial",
		"price": 18000.0,
	}
	payloadBytes, err = json.Marshal(updatePayload)
	assert.NoError(t, err)
	url := "/admin/menu/" + itemID
	req, err = http.NewRequest("PATCH", url, bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Toggle favorite
	req, err = http.NewRequest("POST", url+"/favorite", nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete = soft delete; item hilang dari katalog aktif
	req, err = http.NewRequest("DELETE", url, nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, err = http.NewRequest("GET", "/menu", nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &listResp)
	assert.NoError(t, err)
	listData := listResp["data"].(map[string]interface{})
	assert.Empty(t, listData["items"])

	// Tapi masih muncul di katalog penuh
	req, err = http.NewRequest("GET", "/admin/menu", nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	err = json.Unmarshal(w.Body.Bytes(), &listResp)
	assert.NoError(t, err)
	listData = listResp["data"].(map[string]interface{})
	assert.Len(t, listData["items"], 1)
}

func TestCreateMenuItemValidation(t *testing.T) {
	utils.InitLogger()
	store := setupTestStoreForMenus()
	router := setupMenuRouter(store)

	// Nama kosong dan harga negatif: dua pelanggaran, satu respons 400
	payload := map[string]interface{}{
		"name":  "",
		"price": -5,
	}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/admin/menu", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, false, resp["status"])
}

func TestUpdateUnknownMenuItem(t *testing.T) {
	utils.InitLogger()
	store := setupTestStoreForMenus()
	router := setupMenuRouter(store)

	payloadBytes, err := json.Marshal(map[string]interface{}{
		"name":  "X",
		"price": 1000.0,
	})
	assert.NoError(t, err)

	req, err := http.NewRequest("PATCH", "/admin/menu/itm-missing", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
