package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danuartha/warung-pos/models"
)

func testItem(id, name string, price float64) models.MenuItem {
	return models.MenuItem{ID: id, Name: name, Price: price, Category: "Makanan"}
}

func TestBasketAddIncrementsQuantity(t *testing.T) {
	basket := NewBasketService()
	item := testItem("itm-1", "Nasi Goreng", 25000)

	basket.Add(item)
	basket.Add(item)
	basket.Add(item)

	lines := basket.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "itm-1", lines[0].ID)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestBasketUpdateQuantityRemovesAtZeroOrBelow(t *testing.T) {
	basket := NewBasketService()
	basket.Add(testItem("itm-1", "Nasi Goreng", 25000))
	basket.Add(testItem("itm-2", "Es Teh", 5000))

	basket.UpdateQuantity("itm-1", 0)
	assert.Len(t, basket.Lines(), 1)

	basket.UpdateQuantity("itm-2", -3)
	assert.Empty(t, basket.Lines())
}

func TestBasketUpdateQuantitySetsValue(t *testing.T) {
	basket := NewBasketService()
	basket.Add(testItem("itm-1", "Nasi Goreng", 25000))

	basket.UpdateQuantity("itm-1", 5)

	lines := basket.Lines()
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestBasketNoteAndRemove(t *testing.T) {
	basket := NewBasketService()
	basket.Add(testItem("itm-1", "Nasi Goreng", 25000))
	basket.Add(testItem("itm-2", "Es Teh", 5000))

	basket.UpdateNote("itm-1", "  tanpa sambal  ")
	lines := basket.Lines()
	assert.Equal(t, "tanpa sambal", lines[0].Note)

	basket.Remove("itm-1")
	lines = basket.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, "itm-2", lines[0].ID)
}

func TestBasketTotal(t *testing.T) {
	basket := NewBasketService()
	basket.Add(testItem("itm-1", "Gorengan", 80))
	basket.Add(testItem("itm-1", "Gorengan", 80))
	basket.Add(testItem("itm-2", "Kopi", 120))

	assert.Equal(t, 280.0, basket.Total())

	basket.Clear()
	assert.Equal(t, 0.0, basket.Total())
	assert.Empty(t, basket.Lines())
}
