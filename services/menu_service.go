package services

import (
	"github.com/google/uuid"

	"github.com/danuartha/warung-pos/database"
	"github.com/danuartha/warung-pos/events"
	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/utils"
)

// MenuService menangani operasi katalog. Item tidak pernah dihapus
// permanen lewat jalur normal; soft-delete lewat flag hidden supaya
// order lama tetap bisa merujuk namanya.
type MenuService struct {
	store *database.Store
}

func NewMenuService(store *database.Store) *MenuService {
	return &MenuService{store: store}
}

// ActiveMenu mengembalikan item yang boleh tampil di permukaan pemilihan
// (hidden dikecualikan) plus jumlah record rusak yang di-drop.
func (s *MenuService) ActiveMenu() ([]models.MenuItem, int, error) {
	all, dropped, err := s.store.GetMenu()
	if err != nil {
		return nil, 0, err
	}

	items := make([]models.MenuItem, 0, len(all))
	for _, item := range all {
		if item.Hidden {
			continue
		}
		items = append(items, item)
	}
	return items, dropped, nil
}

// FullMenu mengembalikan seluruh katalog termasuk yang hidden (untuk admin).
func (s *MenuService) FullMenu() ([]models.MenuItem, int, error) {
	return s.store.GetMenu()
}

// Create membuat item baru; id digenerate server, bukan dari client.
func (s *MenuService) Create(input models.MenuItemInput) (models.MenuItem, error) {
	item := models.SanitizeMenuItem(input)
	item.ID = "itm-" + uuid.NewString()

	if err := models.ValidateMenuItem(item, false); err != nil {
		return models.MenuItem{}, err
	}
	if err := s.store.PutMenuItem(item); err != nil {
		return models.MenuItem{}, err
	}

	events.BroadcastMenuUpdate(item)
	return item, nil
}

// Edit memutasi item yang sudah ada di tempat.
func (s *MenuService) Edit(input models.MenuItemInput) (models.MenuItem, error) {
	item := models.SanitizeMenuItem(input)
	if err := models.ValidateMenuItem(item, true); err != nil {
		return models.MenuItem{}, err
	}

	existing, err := s.store.GetMenuItem(item.ID)
	if err == database.ErrNotFound {
		return models.MenuItem{}, ErrItemNotFound
	}
	if err != nil {
		return models.MenuItem{}, err
	}

	existing.Name = item.Name
	existing.Price = item.Price
	existing.Category = item.Category
	existing.Favorite = item.Favorite
	existing.Hidden = item.Hidden

	if err := s.store.PutMenuItem(existing); err != nil {
		return models.MenuItem{}, err
	}

	events.BroadcastMenuUpdate(existing)
	return existing, nil
}

// SoftDelete menyembunyikan item dari permukaan aktif tanpa menghapusnya.
func (s *MenuService) SoftDelete(id string) (models.MenuItem, error) {
	return s.setFlag(id, func(item *models.MenuItem) {
		item.Hidden = true
	})
}

// ToggleFavorite membalik flag favorit.
func (s *MenuService) ToggleFavorite(id string) (models.MenuItem, error) {
	return s.setFlag(id, func(item *models.MenuItem) {
		item.Favorite = !item.Favorite
	})
}

func (s *MenuService) setFlag(id string, mutate func(*models.MenuItem)) (models.MenuItem, error) {
	item, err := s.store.GetMenuItem(id)
	if err == database.ErrNotFound {
		return models.MenuItem{}, ErrItemNotFound
	}
	if err != nil {
		return models.MenuItem{}, err
	}

	mutate(&item)
	if err := s.store.PutMenuItem(item); err != nil {
		return models.MenuItem{}, err
	}

	events.BroadcastMenuUpdate(item)
	return item, nil
}

// RestoreDefaults mengganti seluruh katalog dengan katalog bawaan.
func (s *MenuService) RestoreDefaults() error {
	if err := s.store.ReplaceAllMenu(DefaultCatalog()); err != nil {
		return err
	}
	utils.InfoLogger.Info("Default catalog restored")
	return nil
}

// SeedIfEmpty mengisi katalog bawaan saat first run.
func (s *MenuService) SeedIfEmpty() error {
	items, _, err := s.store.GetMenu()
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return nil
	}
	return s.RestoreDefaults()
}

// MostUsed mengembalikan maksimal n item aktif terurut dari yang paling
// sering dipilih menurut usage counter.
func (s *MenuService) MostUsed(n int) ([]models.MenuItem, error) {
	counters, err := s.store.UsageCounts()
	if err != nil {
		return nil, err
	}

	items, _, err := s.ActiveMenu()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	out := make([]models.MenuItem, 0, n)
	for _, counter := range counters {
		if len(out) >= n {
			break
		}
		if item, ok := byID[counter.MenuItemID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}
