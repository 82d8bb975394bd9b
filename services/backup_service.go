package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danuartha/warung-pos/database"
	"github.com/danuartha/warung-pos/events"
	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/utils"
)

// Snapshot adalah format file backup: dump penuh menu dan order aktif.
// Arsip sengaja tidak ikut.
type Snapshot struct {
	Menu   []models.MenuItem `json:"menu"`
	Orders []models.Order    `json:"orders"`
}

// BackupService menangani export/import dataset dan proyeksi CSV.
type BackupService struct {
	store *database.Store
}

func NewBackupService(store *database.Store) *BackupService {
	return &BackupService{store: store}
}

// ExportAll mengambil snapshot kedua koleksi aktif.
func (s *BackupService) ExportAll() (Snapshot, error) {
	menu, droppedMenu, err := s.store.GetMenu()
	if err != nil {
		return Snapshot{}, err
	}
	orders, droppedOrders, err := s.store.GetAllOrders()
	if err != nil {
		return Snapshot{}, err
	}
	if droppedMenu+droppedOrders > 0 {
		utils.ErrorLogger.Warnf("export: %d invalid records excluded", droppedMenu+droppedOrders)
	}
	return Snapshot{Menu: menu, Orders: orders}, nil
}

// ExportJSON menghasilkan file backup pretty-printed.
func (s *BackupService) ExportJSON() ([]byte, error) {
	snapshot, err := s.ExportAll()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snapshot, "", "  ")
}

// ImportAll mengganti SELURUH isi menu dan order dengan isi snapshot
// (replace-all, bukan merge). Entri yang gagal predicate struktural
// di-drop; kalau menu non-kosong tersaring habis, file dianggap rusak.
func (s *BackupService) ImportAll(raw []byte) (int, int, error) {
	// Pointer slice membedakan field yang hilang/null dari array kosong.
	var incoming struct {
		Menu   *[]models.MenuItem `json:"menu"`
		Orders *[]models.Order    `json:"orders"`
	}
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if incoming.Menu == nil || incoming.Orders == nil {
		return 0, 0, fmt.Errorf("%w: menu and orders must be arrays", ErrInvalidBackup)
	}

	menu := make([]models.MenuItem, 0, len(*incoming.Menu))
	for _, item := range *incoming.Menu {
		if !item.Valid() {
			utils.ErrorLogger.Warnf("import: dropping invalid menu item id=%q", item.ID)
			continue
		}
		menu = append(menu, item)
	}
	// Menu yang memang kosong sah; yang tersaring habis padahal ada
	// isinya berarti seluruh file tidak bisa dipercaya.
	if len(*incoming.Menu) > 0 && len(menu) == 0 {
		return 0, 0, fmt.Errorf("%w: no valid menu items", ErrInvalidBackup)
	}

	orders := make([]models.Order, 0, len(*incoming.Orders))
	for _, order := range *incoming.Orders {
		if !order.Valid() {
			utils.ErrorLogger.Warnf("import: dropping invalid order id=%q", order.ID)
			continue
		}
		orders = append(orders, order)
	}

	if err := s.store.ReplaceAllMenu(menu); err != nil {
		return 0, 0, err
	}
	if err := s.store.ReplaceAllOrders(orders); err != nil {
		return len(menu), 0, err
	}

	events.BroadcastBackupImported(len(menu), len(orders))
	utils.InfoLogger.Infof("Backup imported: %d menu items, %d orders", len(menu), len(orders))
	return len(menu), len(orders), nil
}

// OrdersCSV memproyeksikan order aktif jadi CSV, satu baris per order.
// Nama item tidak di-escape; koma/titik-koma di nama akan bocor ke
// format (limitasi yang diterima).
func (s *BackupService) OrdersCSV() (string, error) {
	orders, dropped, err := s.store.GetAllOrders()
	if err != nil {
		return "", err
	}
	if dropped > 0 {
		utils.ErrorLogger.Warnf("csv export: %d invalid records excluded", dropped)
	}

	var sb strings.Builder
	sb.WriteString("orderId,timestamp,status,total,items\n")

	for _, order := range orders {
		parts := make([]string, 0, len(order.Items))
		for _, item := range order.Items {
			parts = append(parts, fmt.Sprintf("%s(x%d)", item.Name, item.Quantity))
		}
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%.2f,%s\n",
			order.ID,
			order.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
			order.Status,
			order.Total,
			strings.Join(parts, ";"),
		))
	}

	return sb.String(), nil
}
