package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/warung-pos/services"
	"github.com/danuartha/warung-pos/utils"
)

type OrderController struct {
	Orders *services.OrderService
	Stats  *services.StatsService
}

func NewOrderController(orders *services.OrderService, stats *services.StatsService) *OrderController {
	return &OrderController{Orders: orders, Stats: stats}
}

// CreateOrder -> commit keranjang jadi order baru
func (oc *OrderController) CreateOrder(c *gin.Context) {
	order, err := oc.Orders.Create()
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders -> list order aktif, opsional difilter dengan ?q=
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, dropped, err := oc.Orders.Filter(c.Query("q"))
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", gin.H{
		"orders":  orders,
		"dropped": dropped,
	})
}

// UpdateOrderStatus -> transisi status satu order. Mundur satu langkah
// wajib menyertakan confirmed=true.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	type ReqBody struct {
		Status    string `json:"status" binding:"required"`
		Confirmed bool   `json:"confirmed"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.ChangeStatus(c.Param("order_id"), body.Status, body.Confirmed)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// BulkUpdateStatus -> transisi status banyak order sekaligus. Best-effort:
// update yang sudah sukses tetap tersimpan walau ada yang gagal.
func (oc *OrderController) BulkUpdateStatus(c *gin.Context) {
	type ReqBody struct {
		OrderIDs  []string `json:"order_ids" binding:"required"`
		Status    string   `json:"status" binding:"required"`
		Confirmed bool     `json:"confirmed"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	applied, err := oc.Orders.BulkChangeStatus(body.OrderIDs, body.Status, body.Confirmed)
	if err != nil {
		// Sebagian bisa saja sudah ter-apply; laporkan keduanya.
		c.JSON(http.StatusMultiStatus, utils.JSONResponse{
			Status:  false,
			Message: err.Error(),
			Data:    gin.H{"applied": applied},
		})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order statuses updated", gin.H{"applied": applied})
}

// GetStats -> omzet hari ini / minggu ini / sepanjang waktu + top-5 item
func (oc *OrderController) GetStats(c *gin.Context) {
	totals, err := oc.Stats.Totals()
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Sales totals", totals)
}
