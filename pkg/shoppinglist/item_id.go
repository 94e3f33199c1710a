package shoppinglist

import (
	"hash/fnv"
	"strconv"

	"household-backend/entities"
)

// deriveItemID computes a shopping list item's identity from its content.
// Items carry no stored id; clients address them by this hash, recomputed on
// every read. Purchase and pantry state do not participate, so toggling an
// item does not change its id. Identical items share an id, and id-addressed
// operations act on the first match.
func deriveItemID(item entities.ShoppingListItem) string {
	h := fnv.New32a()
	h.Write([]byte(item.Name))
	h.Write([]byte{'|'})
	h.Write([]byte(strconv.FormatFloat(item.Quantity, 'g', -1, 64)))
	h.Write([]byte{'|'})
	h.Write([]byte(item.Unit))
	h.Write([]byte{'|'})
	h.Write([]byte(item.Category))
	h.Write([]byte{'|'})
	h.Write([]byte(item.Notes))
	return strconv.FormatUint(uint64(h.Sum32()), 10)
}

// findItemIndexByID returns the index of the first item whose derived id
// matches, or -1.
func findItemIndexByID(items entities.ShoppingListItems, id string) int {
	for i := range items {
		if deriveItemID(items[i]) == id {
			return i
		}
	}
	return -1
}
