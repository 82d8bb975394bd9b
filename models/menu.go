package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const DefaultCategory = "Uncategorized"

type MenuItem struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category  string    `gorm:"type:varchar(100);not null;default:'Uncategorized'" json:"category"`
	Favorite  bool      `json:"favorite"`
	Hidden    bool      `json:"hidden"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuItemInput adalah payload mentah dari client sebelum sanitasi.
// Price/Favorite/Hidden sengaja longgar karena client lama mengirim
// angka sebagai string.
type MenuItemInput struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    interface{} `json:"price"`
	Category string      `json:"category"`
	Favorite interface{} `json:"favorite"`
	Hidden   interface{} `json:"hidden"`
}

// SanitizeMenuItem menormalkan input sebelum validasi: trim string,
// paksa price jadi angka 2 desimal (0 kalau bukan angka), kategori
// default, dan flag jadi boolean.
func SanitizeMenuItem(raw MenuItemInput) MenuItem {
	item := MenuItem{
		ID:       strings.TrimSpace(raw.ID),
		Name:     strings.TrimSpace(raw.Name),
		Price:    round2(coerceNumber(raw.Price)),
		Category: strings.TrimSpace(raw.Category),
		Favorite: coerceBool(raw.Favorite),
		Hidden:   coerceBool(raw.Hidden),
	}
	if item.Category == "" {
		item.Category = DefaultCategory
	}
	return item
}

// ValidateMenuItem mengumpulkan semua pelanggaran, bukan cuma yang pertama.
func ValidateMenuItem(item MenuItem, isEdit bool) error {
	var rules []string
	if isEdit && item.ID == "" {
		rules = append(rules, "id is required for edit")
	}
	if item.Name == "" {
		rules = append(rules, "name must not be empty")
	}
	if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) || item.Price < 0 {
		rules = append(rules, "price must be a finite non-negative number")
	}
	if item.Category == "" {
		rules = append(rules, "category must not be empty")
	}
	if len(rules) > 0 {
		return &ValidationError{Rules: rules}
	}
	return nil
}

// Valid adalah predicate struktural untuk firewall saat read/import.
// Record yang gagal di sini di-drop, bukan dipropagasi.
func (m MenuItem) Valid() bool {
	if m.ID == "" || m.Name == "" {
		return false
	}
	if math.IsNaN(m.Price) || math.IsInf(m.Price, 0) || m.Price < 0 {
		return false
	}
	return true
}

func coerceNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceBool(v interface{}) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	case float64:
		return b != 0
	default:
		return false
	}
}

func round2(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return math.Round(f*100) / 100
}
