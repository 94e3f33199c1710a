package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPantryItemQuantity(t *testing.T) {
	t.Run("reduce debits the stock", func(t *testing.T) {
		item := &PantryItem{Name: "flour", Quantity: 500, Unit: "g"}
		assert.True(t, item.ReduceQuantity(100))
		assert.InDelta(t, 400, item.Quantity, 1e-9)
	})

	t.Run("reduce refuses to go negative", func(t *testing.T) {
		item := &PantryItem{Name: "flour", Quantity: 50, Unit: "g"}
		assert.False(t, item.ReduceQuantity(100))
		assert.InDelta(t, 50, item.Quantity, 1e-9)
	})

	t.Run("reduce can empty the stock exactly", func(t *testing.T) {
		item := &PantryItem{Name: "flour", Quantity: 100, Unit: "g"}
		assert.True(t, item.ReduceQuantity(100))
		assert.InDelta(t, 0, item.Quantity, 1e-9)
	})

	t.Run("increase credits the stock", func(t *testing.T) {
		item := &PantryItem{Name: "flour", Quantity: 400, Unit: "g"}
		item.IncreaseQuantity(100)
		assert.InDelta(t, 500, item.Quantity, 1e-9)
	})
}
