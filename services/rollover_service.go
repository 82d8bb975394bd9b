package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/danuartha/warung-pos/database"
	"github.com/danuartha/warung-pos/events"
	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/utils"
)

// RetentionDays adalah umur maksimum order aktif sebelum disapu ke arsip.
const RetentionDays = 30

const dateLayout = "2006-01-02"

// RolloverService menangani tutup toko harian dan penyapuan order lama
// ke arsip.
type RolloverService struct {
	store *database.Store

	// Now bisa diganti di test untuk mengontrol jam dinding.
	Now func() time.Time

	StopChan chan struct{}
	Interval time.Duration

	mu          sync.Mutex
	lastRunDate string // tanggal rollover yang dilakukan proses ini
}

func NewRolloverService(store *database.Store) *RolloverService {
	return &RolloverService{
		store:    store,
		Now:      time.Now,
		StopChan: make(chan struct{}),
		Interval: time.Minute,
	}
}

// CleanupOldOrders menyapu order aktif yang lebih tua dari retensi ke
// arsip, lalu menulis ulang SELURUH koleksi aktif dengan set yang
// dipertahankan (replace-all, bukan delete selektif). Best-effort:
// order yang gagal diarsip tetap dipertahankan di koleksi aktif.
func (s *RolloverService) CleanupOldOrders() (int, error) {
	enabled, err := s.store.BoolSetting(models.SettingAutoArchive, true)
	if err != nil {
		return 0, err
	}
	if !enabled {
		return 0, nil
	}

	orders, dropped, err := s.store.GetAllOrders()
	if err != nil {
		return 0, err
	}
	if dropped > 0 {
		utils.ErrorLogger.Warnf("cleanup: %d invalid order records skipped", dropped)
	}

	cutoff := s.Now().AddDate(0, 0, -RetentionDays)

	var result *multierror.Error
	retained := make([]models.Order, 0, len(orders))
	archived := 0

	for _, order := range orders {
		if !order.Timestamp.Before(cutoff) {
			retained = append(retained, order)
			continue
		}
		if err := s.store.AppendArchive(order); err != nil {
			result = multierror.Append(result, fmt.Errorf("order %s: %w", order.ID, err))
			retained = append(retained, order)
			continue
		}
		archived++
	}

	if archived > 0 {
		if err := s.store.ReplaceAllOrders(retained); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return archived, result.ErrorOrNil()
}

// CloseShopNow mengarsipkan semua order aktif tanpa syarat, mengosongkan
// koleksi aktif, dan mencatat tanggal hari ini sebagai penanda reset.
func (s *RolloverService) CloseShopNow() (int, error) {
	orders, dropped, err := s.store.GetAllOrders()
	if err != nil {
		return 0, err
	}
	if dropped > 0 {
		utils.ErrorLogger.Warnf("close shop: %d invalid order records skipped", dropped)
	}

	if len(orders) > 0 {
		if err := s.store.AppendArchive(orders...); err != nil {
			return 0, err
		}
		if err := s.store.ClearOrders(); err != nil {
			return 0, err
		}
	}

	today := s.Now().Format(dateLayout)
	if err := s.store.SetSetting(models.SettingLastResetDate, today); err != nil {
		return len(orders), err
	}

	s.mu.Lock()
	s.lastRunDate = today
	s.mu.Unlock()

	events.BroadcastShopClosed(len(orders))
	utils.InfoLogger.Infof("Shop closed, %d orders archived", len(orders))
	return len(orders), nil
}

// MaybeDailyReset memutuskan apakah rollover harian perlu jalan.
// (a) penanda reset bukan hari ini -> langsung reset, berapapun jamnya;
//     ini semantik catch-up: run pertama setelah tengah malam selalu
//     menutup hari sebelumnya.
// (b) penanda sudah hari ini tapi jam sudah melewati jam tutup dan
//     proses ini belum melakukan reset hari ini -> reset.
// Dipanggil dua kali di hari yang sama tanpa perubahan state eksternal,
// rollover jalan paling banyak sekali.
func (s *RolloverService) MaybeDailyReset() (bool, error) {
	now := s.Now()
	today := now.Format(dateLayout)

	lastReset, err := s.store.GetSetting(models.SettingLastResetDate, "")
	if err != nil {
		return false, err
	}

	if lastReset != today {
		_, err := s.CloseShopNow()
		return err == nil, err
	}

	s.mu.Lock()
	doneToday := s.lastRunDate == today
	s.mu.Unlock()

	if !doneToday && !now.Before(s.closingTimeToday(now)) {
		_, err := s.CloseShopNow()
		return err == nil, err
	}

	return false, nil
}

// closingTimeToday memetakan setting jam tutup (HH:MM) ke instant hari
// ini; nilai yang tidak bisa diparse jatuh ke default 23:00.
func (s *RolloverService) closingTimeToday(now time.Time) time.Time {
	raw, err := s.store.GetSetting(models.SettingClosingTime, models.DefaultClosingTime)
	if err != nil {
		raw = models.DefaultClosingTime
	}

	parsed, err := time.Parse("15:04", raw)
	if err != nil {
		utils.ErrorLogger.Warnf("invalid closing_time %q, falling back to %s", raw, models.DefaultClosingTime)
		parsed, _ = time.Parse("15:04", models.DefaultClosingTime)
	}

	return time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
}

// Start menjalankan pemantau rollover di background.
func (s *RolloverService) Start() {
	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := s.MaybeDailyReset(); err != nil {
					utils.ErrorLogger.Errorf("daily reset check failed: %v", err)
				}
				if _, err := s.CleanupOldOrders(); err != nil {
					utils.ErrorLogger.Errorf("order cleanup failed: %v", err)
				}
			case <-s.StopChan:
				return
			}
		}
	}()
}

func (s *RolloverService) Stop() {
	close(s.StopChan)
}
