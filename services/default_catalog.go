package services

import "github.com/danuartha/warung-pos/models"

// DefaultCatalog adalah katalog bawaan yang dipakai saat first run dan
// saat admin memulihkan katalog. Id dibuat stabil supaya restore tidak
// memutus referensi order lama.
func DefaultCatalog() []models.MenuItem {
	return []models.MenuItem{
		{ID: "itm-default-001", Name: "Nasi Goreng Spesial", Price: 25000, Category: "Makanan"},
		{ID: "itm-default-002", Name: "Mie Goreng", Price: 20000, Category: "Makanan"},
		{ID: "itm-default-003", Name: "Ayam Bakar", Price: 30000, Category: "Makanan"},
		{ID: "itm-default-004", Name: "Veg Fried Rice", Price: 22000, Category: "Makanan"},
		{ID: "itm-default-005", Name: "Sate Ayam (10 tusuk)", Price: 28000, Category: "Makanan"},
		{ID: "itm-default-006", Name: "Gado-Gado", Price: 18000, Category: "Makanan"},
		{ID: "itm-default-007", Name: "Es Teh Manis", Price: 5000, Category: "Minuman", Favorite: true},
		{ID: "itm-default-008", Name: "Es Jeruk", Price: 7000, Category: "Minuman"},
		{ID: "itm-default-009", Name: "Kopi Hitam", Price: 8000, Category: "Minuman"},
		{ID: "itm-default-010", Name: "Teh Tawar", Price: 3000, Category: "Minuman"},
		{ID: "itm-default-011", Name: "Kerupuk", Price: 2000, Category: "Tambahan"},
		{ID: "itm-default-012", Name: "Sambal Extra", Price: 2000, Category: "Tambahan"},
	}
}
