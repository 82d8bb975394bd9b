package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/warung-pos/database"
	"github.com/danuartha/warung-pos/services"
	"github.com/danuartha/warung-pos/utils"
)

type BasketController struct {
	Basket *services.BasketService
	Store  *database.Store
}

func NewBasketController(basket *services.BasketService, store *database.Store) *BasketController {
	return &BasketController{Basket: basket, Store: store}
}

// GetBasket -> isi keranjang plus totalnya
func (bc *BasketController) GetBasket(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Basket contents", gin.H{
		"lines": bc.Basket.Lines(),
		"total": bc.Basket.Total(),
	})
}

// AddToBasket -> tambah item; id yang sudah ada menaikkan quantity
func (bc *BasketController) AddToBasket(c *gin.Context) {
	type ReqBody struct {
		ItemID string `json:"item_id" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := bc.Store.GetMenuItem(body.ItemID)
	if err == database.ErrNotFound {
		utils.RespondError(c, http.StatusNotFound, services.ErrItemNotFound)
		return
	}
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	if item.Hidden {
		// Item tersembunyi tidak bisa dipilih lagi
		utils.RespondError(c, http.StatusNotFound, services.ErrItemNotFound)
		return
	}

	bc.Basket.Add(item)
	utils.RespondJSON(c, http.StatusOK, "Item added to basket", gin.H{
		"lines": bc.Basket.Lines(),
		"total": bc.Basket.Total(),
	})
}

// UpdateQuantity -> set quantity; <= 0 menghapus baris
func (bc *BasketController) UpdateQuantity(c *gin.Context) {
	type ReqBody struct {
		Quantity int `json:"quantity"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	bc.Basket.UpdateQuantity(c.Param("item_id"), body.Quantity)
	utils.RespondJSON(c, http.StatusOK, "Quantity updated", gin.H{
		"lines": bc.Basket.Lines(),
		"total": bc.Basket.Total(),
	})
}

// UpdateNote -> catatan per baris
func (bc *BasketController) UpdateNote(c *gin.Context) {
	type ReqBody struct {
		Note string `json:"note"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	bc.Basket.UpdateNote(c.Param("item_id"), body.Note)
	utils.RespondJSON(c, http.StatusOK, "Note updated", bc.Basket.Lines())
}

// RemoveLine -> hapus satu baris
func (bc *BasketController) RemoveLine(c *gin.Context) {
	bc.Basket.Remove(c.Param("item_id"))
	utils.RespondJSON(c, http.StatusOK, "Line removed", gin.H{
		"lines": bc.Basket.Lines(),
		"total": bc.Basket.Total(),
	})
}

// ClearBasket -> kosongkan keranjang
func (bc *BasketController) ClearBasket(c *gin.Context) {
	bc.Basket.Clear()
	utils.RespondJSON(c, http.StatusOK, "Basket cleared", nil)
}
