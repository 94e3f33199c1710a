package entities

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
	MealTypeOther     = "other"
)

func IsValidMealType(mealType string) bool {
	switch mealType {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeOther:
		return true
	}
	return false
}

// RemovedIngredient records a single pantry debit made when a meal was
// completed. The quantity is the exact amount taken, so uncompleting the meal
// can restore it without recomputation.
type RemovedIngredient struct {
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	PantryItemID   string  `json:"pantry_item_id"`
}

type MealPlanItem struct {
	RecipeID           uuid.UUID           `json:"recipe_id"`
	Date               time.Time           `json:"date"`
	MealType           string              `json:"meal_type"`
	Servings           int                 `json:"servings"`
	IsCompleted        bool                `json:"is_completed"`
	CompletedAt        *time.Time          `json:"completed_at,omitempty"`
	RemovedIngredients []RemovedIngredient `json:"removed_ingredients,omitempty"`
}

// MarkAsCompleted transitions the meal to completed, remembering exactly what
// was debited from the pantry.
func (m *MealPlanItem) MarkAsCompleted(removed []RemovedIngredient) {
	now := time.Now()
	m.IsCompleted = true
	m.CompletedAt = &now
	m.RemovedIngredients = removed
}

// MarkAsUncompleted transitions the meal back to planned and clears the debit
// record.
func (m *MealPlanItem) MarkAsUncompleted() {
	m.IsCompleted = false
	m.CompletedAt = nil
	m.RemovedIngredients = nil
}

type MealPlanItems []MealPlanItem

func (m MealPlanItems) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *MealPlanItems) Scan(value interface{}) error {
	return scanJSON(value, m)
}

type MealPlan struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name      string        `json:"name"`
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Meals     MealPlanItems `gorm:"type:jsonb" json:"meals"`

	Timestamp
}
