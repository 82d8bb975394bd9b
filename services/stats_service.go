package services

import (
	"sort"
	"time"

	"github.com/danuartha/warung-pos/database"
	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/utils"
)

// TopItem adalah satu entri peringkat item terlaris.
type TopItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// PeriodTotals merangkum omzet per periode plus 5 item terlaris.
type PeriodTotals struct {
	Today    float64   `json:"today"`
	Week     float64   `json:"week"`
	AllTime  float64   `json:"all_time"`
	TopItems []TopItem `json:"top_items"`
}

// StatsService menghitung ringkasan omzet dari order aktif + arsip.
type StatsService struct {
	store *database.Store

	// Now bisa diganti di test.
	Now func() time.Time
}

func NewStatsService(store *database.Store) *StatsService {
	return &StatsService{store: store, Now: time.Now}
}

// Totals menghitung omzet hari ini, minggu ini (mulai Senin), dan
// sepanjang waktu, plus top-5 item berdasarkan total quantity. Item
// order disimpan sebagai snapshot JSON per order, jadi agregasi jalan
// di memori, bukan lewat JOIN.
func (s *StatsService) Totals() (PeriodTotals, error) {
	active, droppedActive, err := s.store.GetAllOrders()
	if err != nil {
		return PeriodTotals{}, err
	}
	archived, droppedArchive, err := s.store.GetArchive()
	if err != nil {
		return PeriodTotals{}, err
	}
	if droppedActive+droppedArchive > 0 {
		utils.ErrorLogger.Warnf("stats: %d invalid records excluded", droppedActive+droppedArchive)
	}

	orders := make([]models.Order, 0, len(active)+len(archived))
	orders = append(orders, active...)
	for _, a := range archived {
		orders = append(orders, a.Order)
	}

	now := s.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -mondayOffset(now.Weekday()))

	totals := PeriodTotals{}
	qtyByItem := make(map[string]*TopItem)

	for _, order := range orders {
		totals.AllTime += order.Total
		if !order.Timestamp.Before(startOfWeek) {
			totals.Week += order.Total
		}
		if !order.Timestamp.Before(startOfDay) {
			totals.Today += order.Total
		}

		for _, item := range order.Items {
			entry, ok := qtyByItem[item.ID]
			if !ok {
				entry = &TopItem{ID: item.ID, Name: item.Name}
				qtyByItem[item.ID] = entry
			}
			entry.Quantity += item.Quantity
		}
	}

	totals.Today = utils.Round2(totals.Today)
	totals.Week = utils.Round2(totals.Week)
	totals.AllTime = utils.Round2(totals.AllTime)

	ranked := make([]TopItem, 0, len(qtyByItem))
	for _, entry := range qtyByItem {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	totals.TopItems = ranked

	return totals, nil
}

// mondayOffset menghitung jarak hari ke Senin minggu berjalan.
func mondayOffset(day time.Weekday) int {
	if day == time.Sunday {
		return 6
	}
	return int(day) - 1
}
