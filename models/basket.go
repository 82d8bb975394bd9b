package models

// BasketLine adalah baris keranjang yang belum di-commit; hidup di memori
// saja dan hilang saat proses berhenti.
type BasketLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Note     string  `json:"note"`
}

// Snapshot membekukan baris keranjang jadi item order.
func (l BasketLine) Snapshot() OrderItem {
	return OrderItem{
		ID:       l.ID,
		Name:     l.Name,
		Price:    l.Price,
		Quantity: l.Quantity,
		Note:     l.Note,
	}
}
