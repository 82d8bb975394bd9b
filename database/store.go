package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/utils"
)

var (
	// ErrStoreUnavailable berarti datastore belum diinisialisasi; fatal
	// untuk operasi apapun, beda dengan kegagalan baca/tulis biasa.
	ErrStoreUnavailable = errors.New("datastore not initialized")

	// ErrNotFound untuk lookup by key yang tidak ketemu.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey saat AddOrder dipanggil dengan id yang sudah ada.
	ErrDuplicateKey = errors.New("record already exists")
)

// Store membungkus koneksi gorm dan mengekspos tiga koleksi record:
// menu, orders, dan archive. Semua kegagalan I/O dibungkus dan
// dikembalikan ke caller, tidak pernah ditelan diam-diam.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// AutoMigrate membuat skema kalau belum ada; idempoten.
func (s *Store) AutoMigrate() error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.DB.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.ArchivedOrder{},
		&models.Setting{},
		&models.UsageCounter{},
	)
}

func (s *Store) ready() error {
	if s == nil || s.DB == nil {
		return ErrStoreUnavailable
	}
	return nil
}

/*
========================================
 MENU COLLECTION
========================================
*/

// GetMenu membaca seluruh koleksi menu dengan kebijakan lenient read:
// record yang strukturnya rusak di-drop (dengan log), tidak menggagalkan
// seluruh pembacaan. Jumlah record yang di-drop ikut dikembalikan.
func (s *Store) GetMenu() ([]models.MenuItem, int, error) {
	if err := s.ready(); err != nil {
		return nil, 0, err
	}

	var rows []models.MenuItem
	if err := s.DB.Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("read menu: %w", err)
	}

	items := make([]models.MenuItem, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if !row.Valid() {
			dropped++
			utils.ErrorLogger.Warnf("dropping invalid menu record id=%q", row.ID)
			continue
		}
		items = append(items, row)
	}
	return items, dropped, nil
}

func (s *Store) GetMenuItem(id string) (models.MenuItem, error) {
	if err := s.ready(); err != nil {
		return models.MenuItem{}, err
	}

	var item models.MenuItem
	err := s.DB.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.MenuItem{}, ErrNotFound
	}
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("read menu item %s: %w", id, err)
	}
	return item, nil
}

// PutMenuItem upsert satu item menu.
func (s *Store) PutMenuItem(item models.MenuItem) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.DB.Save(&item).Error; err != nil {
		return fmt.Errorf("write menu item %s: %w", item.ID, err)
	}
	return nil
}

// ReplaceAllMenu mengganti seluruh koleksi menu. Clear lalu insert;
// kalau gagal di tengah, koleksi dibiarkan pada state parsial (bukan
// jaminan transaksional, sesuai kontrak datastore).
func (s *Store) ReplaceAllMenu(items []models.MenuItem) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.DB.Where("1 = 1").Delete(&models.MenuItem{}).Error; err != nil {
		return fmt.Errorf("clear menu: %w", err)
	}
	if len(items) == 0 {
		return nil
	}
	if err := s.DB.CreateInBatches(items, 100).Error; err != nil {
		return fmt.Errorf("insert menu: %w", err)
	}
	return nil
}

/*
========================================
 ORDERS COLLECTION
========================================
*/

// GetAllOrders membaca koleksi order aktif, lenient seperti GetMenu.
func (s *Store) GetAllOrders() ([]models.Order, int, error) {
	if err := s.ready(); err != nil {
		return nil, 0, err
	}

	var rows []models.Order
	if err := s.DB.Order("order_number asc").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("read orders: %w", err)
	}

	orders := make([]models.Order, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if !row.Valid() {
			dropped++
			utils.ErrorLogger.Warnf("dropping invalid order record id=%q", row.ID)
			continue
		}
		orders = append(orders, row)
	}
	return orders, dropped, nil
}

func (s *Store) GetOrder(id string) (models.Order, error) {
	if err := s.ready(); err != nil {
		return models.Order{}, err
	}

	var order models.Order
	err := s.DB.First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("read order %s: %w", id, err)
	}
	return order, nil
}

// AddOrder menolak kalau id sudah ada (insert murni, bukan upsert).
func (s *Store) AddOrder(order models.Order) error {
	if err := s.ready(); err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Order{}).Where("id = ?", order.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("check order %s: %w", order.ID, err)
	}
	if count > 0 {
		return ErrDuplicateKey
	}
	if err := s.DB.Create(&order).Error; err != nil {
		return fmt.Errorf("insert order %s: %w", order.ID, err)
	}
	return nil
}

// PutOrder upsert tanpa syarat. Aturan transisi status TIDAK dicek di
// sini; satu-satunya pintu perubahan status adalah OrderService.
func (s *Store) PutOrder(order models.Order) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.DB.Save(&order).Error; err != nil {
		return fmt.Errorf("write order %s: %w", order.ID, err)
	}
	return nil
}

// ReplaceAllOrders mengganti seluruh koleksi order aktif; caller wajib
// mengirim set lengkap yang dipertahankan, bukan delta.
func (s *Store) ReplaceAllOrders(orders []models.Order) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := s.DB.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
		return fmt.Errorf("clear orders: %w", err)
	}
	if len(orders) == 0 {
		return nil
	}
	if err := s.DB.CreateInBatches(orders, 100).Error; err != nil {
		return fmt.Errorf("insert orders: %w", err)
	}
	return nil
}

func (s *Store) ClearOrders() error {
	return s.ReplaceAllOrders(nil)
}

/*
========================================
 ARCHIVE COLLECTION
========================================
*/

// AppendArchive menambahkan order ke koleksi arsip (append-only).
func (s *Store) AppendArchive(orders ...models.Order) error {
	if err := s.ready(); err != nil {
		return err
	}
	for _, order := range orders {
		archived := models.ArchivedOrder{Order: order}
		if err := s.DB.Save(&archived).Error; err != nil {
			return fmt.Errorf("archive order %s: %w", order.ID, err)
		}
	}
	return nil
}

func (s *Store) GetArchive() ([]models.ArchivedOrder, int, error) {
	if err := s.ready(); err != nil {
		return nil, 0, err
	}

	var rows []models.ArchivedOrder
	if err := s.DB.Order("order_number asc").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("read archive: %w", err)
	}

	archived := make([]models.ArchivedOrder, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		if !row.Valid() {
			dropped++
			utils.ErrorLogger.Warnf("dropping invalid archived record id=%q", row.ID)
			continue
		}
		archived = append(archived, row)
	}
	return archived, dropped, nil
}
