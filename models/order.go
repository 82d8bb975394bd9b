package models

import (
	"fmt"
	"math"
	"time"
)

// Status order, urutan maju yang sah
const (
	OrderStatusYetToPrepare = "Yet to prepare"
	OrderStatusPreparing    = "Preparing"
	OrderStatusPrepared     = "Prepared"
	OrderStatusSatisfied    = "Satisfied"
)

// StatusFlow adalah urutan linear status; transisi maju hanya boleh ke
// elemen berikutnya, mundur hanya ke elemen sebelumnya.
var StatusFlow = []string{
	OrderStatusYetToPrepare,
	OrderStatusPreparing,
	OrderStatusPrepared,
	OrderStatusSatisfied,
}

// StatusRank mengembalikan posisi status dalam alur, -1 jika tidak dikenal.
func StatusRank(status string) int {
	for i, s := range StatusFlow {
		if s == status {
			return i
		}
	}
	return -1
}

// OrderItem adalah snapshot baris keranjang saat commit; tidak ada
// referensi hidup ke MenuItem, edit menu belakangan tidak mengubahnya.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Note     string  `json:"note"`
}

type Order struct {
	ID          string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	OrderNumber int         `gorm:"not null" json:"order_number"`
	Timestamp   time.Time   `gorm:"not null" json:"timestamp"`
	Items       []OrderItem `gorm:"serializer:json" json:"items"`
	Total       float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Status      string      `gorm:"type:varchar(20);not null;default:'Yet to prepare'" json:"status"`
}

// ShortCode menghasilkan kode pendek 4 digit untuk display dan pencarian
func (o Order) ShortCode() string {
	return fmt.Sprintf("%04d", o.OrderNumber)
}

// Valid adalah predicate struktural untuk firewall saat read/import.
func (o Order) Valid() bool {
	if o.ID == "" || len(o.Items) == 0 {
		return false
	}
	if math.IsNaN(o.Total) || math.IsInf(o.Total, 0) || o.Total < 0 {
		return false
	}
	if StatusRank(o.Status) < 0 {
		return false
	}
	for _, it := range o.Items {
		if it.ID == "" || it.Name == "" || it.Quantity < 1 || it.Price < 0 {
			return false
		}
	}
	return true
}

// ArchivedOrder punya bentuk yang sama dengan Order tapi hidup di koleksi
// terpisah; append-only, tidak pernah dimutasi setelah diarsip.
type ArchivedOrder struct {
	Order `gorm:"embedded"`
}

func (ArchivedOrder) TableName() string {
	return "archived_orders"
}
