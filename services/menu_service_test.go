package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danuartha/warung-pos/models"
)

func TestMenuCreateGeneratesID(t *testing.T) {
	store := newTestStore(t)
	svc := NewMenuService(store)

	item, err := svc.Create(models.MenuItemInput{
		Name:  "  Bakso Urat  ",
		Price: "15000",
	})
	assert.NoError(t, err)
	assert.True(t, len(item.ID) > 4 && item.ID[:4] == "itm-")
	assert.Equal(t, "Bakso Urat", item.Name)
	assert.Equal(t, 15000.0, item.Price)
	assert.Equal(t, models.DefaultCategory, item.Category)

	stored, err := store.GetMenuItem(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, item.Name, stored.Name)
}

func TestMenuCreateCollectsAllViolations(t *testing.T) {
	store := newTestStore(t)
	svc := NewMenuService(store)

	_, err := svc.Create(models.MenuItemInput{Name: "", Price: -5.0})
	assert.Error(t, err)

	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Rules, 2)
}

func TestMenuEditUnknownID(t *testing.T) {
	store := newTestStore(t)
	svc := NewMenuService(store)

	_, err := svc.Edit(models.MenuItemInput{ID: "itm-missing", Name: "X", Price: 1.0})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMenuSoftDeleteAndActiveSurface(t *testing.T) {
	store := newTestStore(t)
	svc := NewMenuService(store)

	assert.NoError(t, store.PutMenuItem(testItem("itm-1", "Nasi Goreng", 25000)))
	assert.NoError(t, store.PutMenuItem(testItem("itm-2", "Es Teh", 5000)))

	hidden, err := svc.SoftDelete("itm-1")
	assert.NoError(t, err)
	assert.True(t, hidden.Hidden)

	// Hidden keluar dari permukaan aktif tapi tetap ada di katalog penuh
	active, _, err := svc.ActiveMenu()
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "itm-2", active[0].ID)

	full, _, err := svc.FullMenu()
	assert.NoError(t, err)
	assert.Len(t, full, 2)

	_, err = svc.SoftDelete("itm-missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMenuToggleFavorite(t *testing.T) {
	store := newTestStore(t)
	svc := NewMenuService(store)

	assert.NoError(t, store.PutMenuItem(testItem("itm-1", "Nasi Goreng", 25000)))

	item, err := svc.ToggleFavorite("itm-1")
	assert.NoError(t, err)
	assert.True(t, item.Favorite)

	item, err = svc.ToggleFavorite("itm-1")
	assert.NoError(t, err)
	assert.False(t, item.Favorite)
}

func TestMenuRestoreDefaultsAndSeed(t *testing.T) {
	store := newTestStore(t)
	svc := NewMenuService(store)

	// First run: katalog kosong -> seed bawaan
	assert.NoError(t, svc.SeedIfEmpty())
	menu, _, err := store.GetMenu()
	assert.NoError(t, err)
	assert.Len(t, menu, len(DefaultCatalog()))

	// Seed kedua tidak menimpa perubahan
	_, err = svc.Create(models.MenuItemInput{Name: "Menu Baru", Price: 1000.0})
	assert.NoError(t, err)
	assert.NoError(t, svc.SeedIfEmpty())
	menu, _, _ = store.GetMenu()
	assert.Len(t, menu, len(DefaultCatalog())+1)

	// Restore mengganti seluruh katalog
	assert.NoError(t, svc.RestoreDefaults())
	menu, _, _ = store.GetMenu()
	assert.Len(t, menu, len(DefaultCatalog()))
}

func TestMostUsedRanking(t *testing.T) {
	store := newTestStore(t)
	svc := NewMenuService(store)

	assert.NoError(t, store.PutMenuItem(testItem("itm-1", "Nasi Goreng", 25000)))
	assert.NoError(t, store.PutMenuItem(testItem("itm-2", "Es Teh", 5000)))
	assert.NoError(t, store.PutMenuItem(testItem("itm-3", "Kopi", 8000)))

	assert.NoError(t, store.IncrementUsage("itm-2", 10))
	assert.NoError(t, store.IncrementUsage("itm-1", 3))
	assert.NoError(t, store.IncrementUsage("itm-3", 7))

	top, err := svc.MostUsed(2)
	assert.NoError(t, err)
	assert.Len(t, top, 2)
	assert.Equal(t, "itm-2", top[0].ID)
	assert.Equal(t, "itm-3", top[1].ID)
}
