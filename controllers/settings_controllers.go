package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/warung-pos/database"
	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/services"
	"github.com/danuartha/warung-pos/utils"
)

type SettingsController struct {
	Store    *database.Store
	Rollover *services.RolloverService
}

func NewSettingsController(store *database.Store, rollover *services.RolloverService) *SettingsController {
	return &SettingsController{Store: store, Rollover: rollover}
}

// GetSettings -> skalar setting toko
func (sc *SettingsController) GetSettings(c *gin.Context) {
	closing, err := sc.Store.GetSetting(models.SettingClosingTime, models.DefaultClosingTime)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	autoArchive, err := sc.Store.BoolSetting(models.SettingAutoArchive, true)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	autoBackup, err := sc.Store.BoolSetting(models.SettingAutoBackup, false)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Shop settings", gin.H{
		"closing_time": closing,
		"auto_archive": autoArchive,
		"auto_backup":  autoBackup,
	})
}

// UpdateSettings -> ubah jam tutup / flag; hanya field yang dikirim
func (sc *SettingsController) UpdateSettings(c *gin.Context) {
	type ReqBody struct {
		ClosingTime *string `json:"closing_time"`
		AutoArchive *bool   `json:"auto_archive"`
		AutoBackup  *bool   `json:"auto_backup"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if body.ClosingTime != nil {
		if _, err := time.Parse("15:04", *body.ClosingTime); err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("closing_time must be HH:MM"))
			return
		}
		if err := sc.Store.SetSetting(models.SettingClosingTime, *body.ClosingTime); err != nil {
			utils.RespondError(c, statusFor(err), err)
			return
		}
	}
	if body.AutoArchive != nil {
		if err := sc.Store.SetSetting(models.SettingAutoArchive, strconv.FormatBool(*body.AutoArchive)); err != nil {
			utils.RespondError(c, statusFor(err), err)
			return
		}
	}
	if body.AutoBackup != nil {
		if err := sc.Store.SetSetting(models.SettingAutoBackup, strconv.FormatBool(*body.AutoBackup)); err != nil {
			utils.RespondError(c, statusFor(err), err)
			return
		}
	}

	sc.GetSettings(c)
}

// CloseShop -> arsipkan semua order aktif sekarang juga
func (sc *SettingsController) CloseShop(c *gin.Context) {
	archived, err := sc.Rollover.CloseShopNow()
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Shop closed", gin.H{"archived": archived})
}

// CleanupOrders -> sapu order lebih tua dari retensi ke arsip
func (sc *SettingsController) CleanupOrders(c *gin.Context) {
	archived, err := sc.Rollover.CleanupOldOrders()
	if err != nil {
		// Sebagian mungkin sudah diarsip; laporkan keduanya.
		c.JSON(http.StatusMultiStatus, utils.JSONResponse{
			Status:  false,
			Message: err.Error(),
			Data:    gin.H{"archived": archived},
		})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Old orders archived", gin.H{"archived": archived})
}
