package database

import (
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/danuartha/warung-pos/models"
)

// GetSetting membaca skalar setting, mengembalikan fallback kalau belum ada.
func (s *Store) GetSetting(key, fallback string) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}

	var setting models.Setting
	err := s.DB.First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("read setting %s: %w", key, err)
	}
	return setting.Value, nil
}

func (s *Store) SetSetting(key, value string) error {
	if err := s.ready(); err != nil {
		return err
	}
	setting := models.Setting{Key: key, Value: value}
	if err := s.DB.Save(&setting).Error; err != nil {
		return fmt.Errorf("write setting %s: %w", key, err)
	}
	return nil
}

// BoolSetting membaca flag on/off.
func (s *Store) BoolSetting(key string, fallback bool) (bool, error) {
	def := "false"
	if fallback {
		def = "true"
	}
	v, err := s.GetSetting(key, def)
	if err != nil {
		return fallback, err
	}
	return v == "true", nil
}

// NextOrderNumber membaca counter, menaikkannya, lalu menyimpan kembali.
// Read-increment-persist ini tidak atomik terhadap penulis lain; asumsi
// single-writer berlaku untuk seluruh aplikasi.
func (s *Store) NextOrderNumber() (int, error) {
	raw, err := s.GetSetting(models.SettingNextOrderNumber, "1")
	if err != nil {
		return 0, err
	}

	next, err := strconv.Atoi(raw)
	if err != nil || next < 1 {
		next = 1
	}

	if err := s.SetSetting(models.SettingNextOrderNumber, strconv.Itoa(next+1)); err != nil {
		return 0, err
	}
	return next, nil
}

// IncrementUsage menaikkan counter pemakaian item; counter hanya naik.
func (s *Store) IncrementUsage(menuItemID string, by int64) error {
	if err := s.ready(); err != nil {
		return err
	}
	if by <= 0 {
		return nil
	}

	var counter models.UsageCounter
	err := s.DB.First(&counter, "menu_item_id = ?", menuItemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = models.UsageCounter{MenuItemID: menuItemID, Count: by}
		if err := s.DB.Create(&counter).Error; err != nil {
			return fmt.Errorf("create usage counter %s: %w", menuItemID, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read usage counter %s: %w", menuItemID, err)
	}

	counter.Count += by
	if err := s.DB.Save(&counter).Error; err != nil {
		return fmt.Errorf("update usage counter %s: %w", menuItemID, err)
	}
	return nil
}

// UsageCounts mengembalikan counter terurut dari yang paling sering dipakai.
func (s *Store) UsageCounts() ([]models.UsageCounter, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var counters []models.UsageCounter
	if err := s.DB.Order("count desc").Find(&counters).Error; err != nil {
		return nil, fmt.Errorf("read usage counters: %w", err)
	}
	return counters, nil
}
