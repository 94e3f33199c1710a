package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListCompletion(t *testing.T) {
	t.Run("completing marks every item purchased", func(t *testing.T) {
		list := &ShoppingList{Items: ShoppingListItems{
			{Name: "milk", Quantity: 1, Unit: "l"},
			{Name: "bread", Quantity: 2, Unit: "piece", IsPurchased: true},
		}}

		list.MarkAsCompleted()

		assert.True(t, list.IsCompleted)
		require.NotNil(t, list.CompletedAt)
		assert.True(t, list.AreAllItemsPurchased())
		assert.Equal(t, 2, list.PurchasedItemsCount())
	})

	t.Run("uncompleting marks every item unpurchased", func(t *testing.T) {
		list := &ShoppingList{Items: ShoppingListItems{
			{Name: "milk", Quantity: 1, Unit: "l", IsPurchased: true},
		}}
		list.MarkAsCompleted()

		list.MarkAsUncompleted()

		assert.False(t, list.IsCompleted)
		assert.Nil(t, list.CompletedAt)
		assert.Equal(t, 0, list.PurchasedItemsCount())
	})

	t.Run("an empty list counts as all purchased", func(t *testing.T) {
		list := &ShoppingList{}
		assert.True(t, list.AreAllItemsPurchased())
	})
}
