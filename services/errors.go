package services

import "errors"

var (
	// ErrEmptyBasket -> createOrder dipanggil dengan keranjang kosong
	ErrEmptyBasket = errors.New("basket is empty")

	// ErrInvalidTransition -> transisi status yang diminta tidak sah
	// (loncat maju/mundur, atau status yang sama / tidak dikenal)
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConfirmationRequired -> mundur satu langkah butuh konfirmasi
	// eksplisit dari user sebelum diterapkan
	ErrConfirmationRequired = errors.New("backward transition requires confirmation")

	// ErrInvalidBackup -> snapshot import tidak berbentuk {menu, orders}
	// atau hasil filter kosong padahal input punya isi
	ErrInvalidBackup = errors.New("invalid backup file")

	// ErrItemNotFound -> operasi katalog menunjuk id yang tidak dikenal
	ErrItemNotFound = errors.New("menu item not found")

	// ErrOrderNotFound -> operasi status menunjuk order yang tidak ada
	ErrOrderNotFound = errors.New("order not found")
)
