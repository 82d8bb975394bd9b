package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danuartha/warung-pos/services"
	"github.com/danuartha/warung-pos/utils"
)

type BackupController struct {
	Backup *services.BackupService
}

func NewBackupController(backup *services.BackupService) *BackupController {
	return &BackupController{Backup: backup}
}

// ExportBackup -> unduh snapshot {menu, orders} sebagai JSON pretty-printed
func (bc *BackupController) ExportBackup(c *gin.Context) {
	data, err := bc.Backup.ExportJSON()
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="warung-pos-backup.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

// ImportBackup -> ganti seluruh dataset dengan isi snapshot (replace-all)
func (bc *BackupController) ImportBackup(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menuCount, orderCount, err := bc.Backup.ImportAll(raw)
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Backup imported", gin.H{
		"menu_items": menuCount,
		"orders":     orderCount,
	})
}

// ExportCSV -> proyeksi order aktif jadi CSV
func (bc *BackupController) ExportCSV(c *gin.Context) {
	csv, err := bc.Backup.OrdersCSV()
	if err != nil {
		utils.RespondError(c, statusFor(err), err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="orders.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}
