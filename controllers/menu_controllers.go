package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/services"
	"github.com/danuartha/warung-pos/utils"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GetActiveMenu -> katalog untuk permukaan pemilihan (hidden dikecualikan)
func (mc *MenuController) GetActiveMenu(c *gin.Context) {
	items, dropped, err := mc.Menu.ActiveMenu()
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", gin.H{
		"items":   items,
		"dropped": dropped,
	})
}

// GetFullMenu -> seluruh katalog termasuk hidden, untuk admin
func (mc *MenuController) GetFullMenu(c *gin.Context) {
	items, dropped, err := mc.Menu.FullMenu()
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Full catalog", gin.H{
		"items":   items,
		"dropped": dropped,
	})
}

// CreateMenuItem -> buat item baru (id digenerate server)
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var input models.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := mc.Menu.Create(input)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem -> edit item di tempat
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	var input models.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	input.ID = c.Param("item_id")

	item, err := mc.Menu.Edit(input)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem -> soft-delete (hidden), bukan hapus permanen
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	item, err := mc.Menu.SoftDelete(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item hidden", item)
}

// ToggleFavorite -> balik flag favorit
func (mc *MenuController) ToggleFavorite(c *gin.Context) {
	item, err := mc.Menu.ToggleFavorite(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Favorite toggled", item)
}

// RestoreDefaults -> ganti katalog dengan katalog bawaan
func (mc *MenuController) RestoreDefaults(c *gin.Context) {
	if err := mc.Menu.RestoreDefaults(); err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Default catalog restored", nil)
}

// GetMostUsed -> item aktif terurut dari yang paling sering dipilih
func (mc *MenuController) GetMostUsed(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || n < 1 {
		n = 5
	}

	items, err := mc.Menu.MostUsed(n)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Most used items", items)
}
