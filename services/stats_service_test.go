package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/danuartha/warung-pos/models"
)

func TestPeriodTotals(t *testing.T) {
	store := newTestStore(t)
	svc := NewStatsService(store)

	// Sabtu 15 Juni 2024; minggu berjalan mulai Senin 10 Juni
	now := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	seedOrder(t, store, "ord-today", now.Add(-2*time.Hour))                 // 25000
	seedOrder(t, store, "ord-week", time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC)) // 25000

	// Order lama yang sudah diarsip tetap ikut all-time
	old := models.Order{
		ID:          "ord-old",
		OrderNumber: 99,
		Timestamp:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Items:       []models.OrderItem{{ID: "itm-9", Name: "Sate Ayam", Price: 28000, Quantity: 2}},
		Total:       56000,
		Status:      models.OrderStatusSatisfied,
	}
	assert.NoError(t, store.AppendArchive(old))

	totals, err := svc.Totals()
	assert.NoError(t, err)
	assert.Equal(t, 25000.0, totals.Today)
	assert.Equal(t, 50000.0, totals.Week)
	assert.Equal(t, 106000.0, totals.AllTime)
}

func TestTopItemsByQuantity(t *testing.T) {
	store := newTestStore(t)
	svc := NewStatsService(store)
	svc.Now = func() time.Time { return time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC) }

	order := models.Order{
		ID:          "ord-1",
		OrderNumber: 1,
		Timestamp:   time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ID: "itm-a", Name: "Nasi Goreng", Price: 25000, Quantity: 3},
			{ID: "itm-b", Name: "Es Teh", Price: 5000, Quantity: 1},
			{ID: "itm-c", Name: "Kopi", Price: 8000, Quantity: 2},
			{ID: "itm-d", Name: "Sate Ayam", Price: 28000, Quantity: 1},
			{ID: "itm-e", Name: "Gado-Gado", Price: 18000, Quantity: 1},
			{ID: "itm-f", Name: "Kerupuk", Price: 2000, Quantity: 1},
		},
		Total:  110000,
		Status: models.OrderStatusYetToPrepare,
	}
	assert.NoError(t, store.AddOrder(order))

	order2 := order
	order2.ID = "ord-2"
	order2.OrderNumber = 2
	order2.Items = []models.OrderItem{
		{ID: "itm-b", Name: "Es Teh", Price: 5000, Quantity: 4},
	}
	order2.Total = 20000
	assert.NoError(t, store.AddOrder(order2))

	totals, err := svc.Totals()
	assert.NoError(t, err)

	// Maksimal 5 entri, terurut menurun berdasarkan quantity
	assert.Len(t, totals.TopItems, 5)
	assert.Equal(t, "itm-b", totals.TopItems[0].ID)
	assert.Equal(t, 5, totals.TopItems[0].Quantity)
	assert.Equal(t, "itm-a", totals.TopItems[1].ID)
	assert.Equal(t, 3, totals.TopItems[1].Quantity)
}
