package models

// Kunci setting yang dipakai aplikasi
const (
	SettingNextOrderNumber = "next_order_number"
	SettingLastResetDate   = "last_reset_date"
	SettingClosingTime     = "closing_time"
	SettingAutoArchive     = "auto_archive"
	SettingAutoBackup      = "auto_backup"
)

const DefaultClosingTime = "23:00"

// Setting adalah skalar key-value di luar tiga koleksi record utama.
type Setting struct {
	Key   string `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value string `gorm:"type:varchar(255);not null" json:"value"`
}

// UsageCounter menghitung berapa kali sebuah item dipilih; hanya naik,
// tidak pernah turun.
type UsageCounter struct {
	MenuItemID string `gorm:"primaryKey;type:varchar(64)" json:"menu_item_id"`
	Count      int64  `gorm:"not null;default:0" json:"count"`
}
