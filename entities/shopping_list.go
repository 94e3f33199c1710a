package entities

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ShoppingListItem has no stored identifier. Clients address items through an
// identity derived from the item's fields, recomputed on every read.
type ShoppingListItem struct {
	Name                   string     `json:"name"`
	Quantity               float64    `json:"quantity"`
	Unit                   string     `json:"unit"`
	Category               string     `json:"category,omitempty"`
	IsPurchased            bool       `json:"is_purchased"`
	InPantry               bool       `json:"in_pantry"`
	Notes                  string     `json:"notes,omitempty"`
	RecipeID               *uuid.UUID `json:"recipe_id,omitempty"`
	OriginalIngredientName string     `json:"original_ingredient_name,omitempty"`
}

type ShoppingListItems []ShoppingListItem

func (s ShoppingListItems) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *ShoppingListItems) Scan(value interface{}) error {
	return scanJSON(value, s)
}

type ShoppingList struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	MealPlanID  *uuid.UUID        `gorm:"type:uuid" json:"meal_plan_id,omitempty"`
	Items       ShoppingListItems `gorm:"type:jsonb" json:"items"`
	IsCompleted bool              `json:"is_completed"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`

	Timestamp
}

// MarkAsCompleted completes the list and marks every item purchased.
func (s *ShoppingList) MarkAsCompleted() {
	now := time.Now()
	s.IsCompleted = true
	s.CompletedAt = &now
	for i := range s.Items {
		s.Items[i].IsPurchased = true
	}
}

// MarkAsUncompleted reopens the list and marks every item unpurchased.
func (s *ShoppingList) MarkAsUncompleted() {
	s.IsCompleted = false
	s.CompletedAt = nil
	for i := range s.Items {
		s.Items[i].IsPurchased = false
	}
}

func (s *ShoppingList) AreAllItemsPurchased() bool {
	for i := range s.Items {
		if !s.Items[i].IsPurchased {
			return false
		}
	}
	return true
}

func (s *ShoppingList) PurchasedItemsCount() int {
	count := 0
	for i := range s.Items {
		if s.Items[i].IsPurchased {
			count++
		}
	}
	return count
}
