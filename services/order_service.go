package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/danuartha/warung-pos/database"
	"github.com/danuartha/warung-pos/events"
	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/utils"
)

// OrderService adalah satu-satunya pintu untuk membuat order dan
// mengubah statusnya. Aturan transisi ditegakkan di sini, bukan di
// storage, supaya storage tidak pernah melihat transisi ilegal.
type OrderService struct {
	store  *database.Store
	basket *BasketService
}

func NewOrderService(store *database.Store, basket *BasketService) *OrderService {
	return &OrderService{store: store, basket: basket}
}

// Create membuat order dari isi keranjang. Urutan: snapshot baris,
// hitung total, ambil nomor order, simpan; keranjang baru dibersihkan
// dan usage counter baru naik SETELAH penyimpanan berhasil.
func (s *OrderService) Create() (models.Order, error) {
	lines := s.basket.Lines()
	if len(lines) == 0 {
		return models.Order{}, ErrEmptyBasket
	}

	items := make([]models.OrderItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		items = append(items, line.Snapshot())
		total += line.Price * float64(line.Quantity)
	}

	number, err := s.store.NextOrderNumber()
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:          "ord-" + uuid.NewString(),
		OrderNumber: number,
		Timestamp:   time.Now(),
		Items:       items,
		Total:       utils.Round2(total),
		Status:      models.OrderStatusYetToPrepare,
	}

	if err := s.store.AddOrder(order); err != nil {
		return models.Order{}, err
	}

	s.basket.Clear()
	for _, line := range lines {
		if err := s.store.IncrementUsage(line.ID, int64(line.Quantity)); err != nil {
			// Counter cuma statistik; kegagalan di sini tidak
			// membatalkan order yang sudah tersimpan.
			utils.ErrorLogger.Warnf("usage counter for %s not updated: %v", line.ID, err)
		}
	}

	events.BroadcastOrderCreated(order)
	return order, nil
}

// ValidateTransition menerapkan state machine linear: maju hanya ke
// status tepat berikutnya; mundur hanya ke status tepat sebelumnya dan
// wajib dikonfirmasi; sisanya ditolak tanpa menyentuh storage.
func ValidateTransition(current, next string, confirmed bool) error {
	from := models.StatusRank(current)
	to := models.StatusRank(next)
	if from < 0 || to < 0 {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, current, next)
	}

	switch to - from {
	case 1:
		return nil
	case -1:
		if !confirmed {
			return ErrConfirmationRequired
		}
		return nil
	default:
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, current, next)
	}
}

// ChangeStatus mengubah status satu order setelah lolos validasi transisi.
func (s *OrderService) ChangeStatus(id, next string, confirmed bool) (models.Order, error) {
	order, err := s.store.GetOrder(id)
	if err == database.ErrNotFound {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	if err := ValidateTransition(order.Status, next, confirmed); err != nil {
		return models.Order{}, err
	}

	order.Status = next
	if err := s.store.PutOrder(order); err != nil {
		return models.Order{}, err
	}

	events.BroadcastOrderUpdate(order)
	return order, nil
}

// BulkChangeStatus menerapkan ChangeStatus per id secara independen.
// Best-effort: kegagalan satu id tidak membatalkan yang sudah sukses;
// error per id dikumpulkan dan operasi dilaporkan gagal kalau ada satu
// saja yang gagal.
func (s *OrderService) BulkChangeStatus(ids []string, next string, confirmed bool) (int, error) {
	var result *multierror.Error
	applied := 0

	for _, id := range ids {
		if _, err := s.ChangeStatus(id, next, confirmed); err != nil {
			result = multierror.Append(result, fmt.Errorf("order %s: %w", id, err))
			continue
		}
		applied++
	}

	return applied, result.ErrorOrNil()
}

// List mengembalikan seluruh order aktif beserta jumlah record rusak
// yang di-drop oleh lenient read.
func (s *OrderService) List() ([]models.Order, int, error) {
	return s.store.GetAllOrders()
}

// Filter mencocokkan query (case-insensitive) dengan substring id order,
// kode pendek 4 digit, atau nama item manapun. Query kosong = semua.
func (s *OrderService) Filter(query string) ([]models.Order, int, error) {
	orders, dropped, err := s.store.GetAllOrders()
	if err != nil {
		return nil, 0, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return orders, dropped, nil
	}

	matched := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if matchesOrder(order, q) {
			matched = append(matched, order)
		}
	}
	return matched, dropped, nil
}

func matchesOrder(order models.Order, q string) bool {
	if strings.Contains(strings.ToLower(order.ID), q) {
		return true
	}
	if strings.Contains(order.ShortCode(), q) {
		return true
	}
	for _, item := range order.Items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			return true
		}
	}
	return false
}
