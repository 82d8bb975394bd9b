package services

import (
	"strings"
	"sync"

	"github.com/danuartha/warung-pos/models"
	"github.com/danuartha/warung-pos/utils"
)

// BasketService memegang satu keranjang in-memory milik proses. Semua
// operasi sinkron dan hanya menyentuh state keranjang; persistensi baru
// terjadi lewat pembuatan order.
type BasketService struct {
	mu    sync.Mutex
	lines []models.BasketLine
}

func NewBasketService() *BasketService {
	return &BasketService{}
}

// Add menambahkan item ke keranjang. Kalau id sudah ada, quantity naik
// satu; tidak pernah ada dua baris untuk id yang sama.
func (b *BasketService) Add(item models.MenuItem) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.lines {
		if b.lines[i].ID == item.ID {
			b.lines[i].Quantity++
			return
		}
	}

	b.lines = append(b.lines, models.BasketLine{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
}

// UpdateQuantity set quantity baris; q <= 0 menghapus barisnya.
func (b *BasketService) UpdateQuantity(id string, q int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if q <= 0 {
		b.removeLocked(id)
		return
	}
	for i := range b.lines {
		if b.lines[i].ID == id {
			b.lines[i].Quantity = q
			return
		}
	}
}

// Remove menghapus satu baris dari keranjang.
func (b *BasketService) Remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.removeLocked(id)
}

func (b *BasketService) removeLocked(id string) {
	for i := range b.lines {
		if b.lines[i].ID == id {
			b.lines = append(b.lines[:i], b.lines[i+1:]...)
			return
		}
	}
}

// UpdateNote mengganti catatan per baris (misal "tanpa sambal").
func (b *BasketService) UpdateNote(id, note string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.lines {
		if b.lines[i].ID == id {
			b.lines[i].Note = strings.TrimSpace(note)
			return
		}
	}
}

// Lines mengembalikan salinan isi keranjang.
func (b *BasketService) Lines() []models.BasketLine {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.BasketLine, len(b.lines))
	copy(out, b.lines)
	return out
}

// Total menghitung jumlah price x quantity seluruh baris.
func (b *BasketService) Total() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	var total float64
	for _, line := range b.lines {
		total += line.Price * float64(line.Quantity)
	}
	return utils.Round2(total)
}

// Clear mengosongkan keranjang.
func (b *BasketService) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}
