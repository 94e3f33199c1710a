package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetShoppingLists     = "shopping lists retrieved successfully"
	MessageSuccessSaveShoppingList     = "shopping list saved successfully"
	MessageSuccessUpdateShoppingList   = "shopping list updated successfully"
	MessageSuccessDeleteShoppingList   = "shopping list deleted successfully"
	MessageSuccessPatchShoppingList    = "shopping list updated successfully"
	MessageSuccessGenerateShoppingList = "shopping list generated successfully"

	MessageFailedGetShoppingLists     = "failed to retrieve shopping lists"
	MessageFailedSaveShoppingList     = "failed to save shopping list"
	MessageFailedUpdateShoppingList   = "failed to update shopping list"
	MessageFailedDeleteShoppingList   = "failed to delete shopping list"
	MessageFailedPatchShoppingList    = "failed to update shopping list"
	MessageFailedGenerateShoppingList = "failed to generate shopping list"

	ErrShoppingListNotFound = errors.New("shopping list not found")
)

const (
	ShoppingListOpTogglePurchased  = "toggle-purchased"
	ShoppingListOpRemoveItem       = "remove-item"
	ShoppingListOpTransferToPantry = "transfer-to-pantry"
	ShoppingListOpAddItem          = "add-item"
)

type (
	// ShoppingListItemRequest carries the full item payload so a PUT replaces
	// items without losing purchase state or recipe provenance.
	ShoppingListItemRequest struct {
		Name                   string  `json:"name" validate:"required"`
		Quantity               float64 `json:"quantity" validate:"required,gt=0"`
		Unit                   string  `json:"unit" validate:"required"`
		Category               string  `json:"category,omitempty"`
		IsPurchased            bool    `json:"is_purchased,omitempty"`
		InPantry               bool    `json:"in_pantry,omitempty"`
		Notes                  string  `json:"notes,omitempty"`
		RecipeID               string  `json:"recipe_id,omitempty" validate:"omitempty,uuid"`
		OriginalIngredientName string  `json:"original_ingredient_name,omitempty"`
	}

	CreateShoppingListRequest struct {
		Name        string                    `json:"name" validate:"required"`
		Description string                    `json:"description,omitempty"`
		Items       []ShoppingListItemRequest `json:"items" validate:"omitempty,dive"`
	}

	UpdateShoppingListRequest struct {
		Name        string                    `json:"name" validate:"required"`
		Description string                    `json:"description,omitempty"`
		Items       []ShoppingListItemRequest `json:"items" validate:"omitempty,dive"`
	}

	GenerateShoppingListRequest struct {
		MealPlanID string `json:"meal_plan_id" validate:"required,uuid"`
		Name       string `json:"name,omitempty"`
	}

	AddShoppingItemData struct {
		Ingredient string  `json:"ingredient"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
		Category   string  `json:"category,omitempty"`
		Notes      string  `json:"notes,omitempty"`
	}

	// PatchShoppingListRequest dispatches one reconciliation operation. The
	// item_index and is_completed fields are the legacy paths kept for older
	// clients.
	PatchShoppingListRequest struct {
		Operation       string               `json:"operation,omitempty"`
		ItemID          string               `json:"item_id,omitempty"`
		Purchased       *bool                `json:"purchased,omitempty"`
		AutoAddToPantry *bool                `json:"auto_add_to_pantry,omitempty"`
		ItemIDs         []string             `json:"item_ids,omitempty"`
		Item            *AddShoppingItemData `json:"item,omitempty"`
		ItemIndex       *int                 `json:"item_index,omitempty"`
		IsCompleted     *bool                `json:"is_completed,omitempty"`
		AddToPantry     *bool                `json:"add_to_pantry,omitempty"`
	}

	ShoppingListItemResponse struct {
		ID                     string  `json:"id"`
		Name                   string  `json:"name"`
		Quantity               float64 `json:"quantity"`
		Unit                   string  `json:"unit"`
		Category               string  `json:"category,omitempty"`
		IsPurchased            bool    `json:"is_purchased"`
		InPantry               bool    `json:"in_pantry"`
		Notes                  string  `json:"notes,omitempty"`
		RecipeID               string  `json:"recipe_id,omitempty"`
		OriginalIngredientName string  `json:"original_ingredient_name,omitempty"`
	}

	ShoppingListResponse struct {
		ID          string                     `json:"id"`
		Name        string                     `json:"name"`
		Description string                     `json:"description,omitempty"`
		MealPlanID  string                     `json:"meal_plan_id,omitempty"`
		Items       []ShoppingListItemResponse `json:"items"`
		IsCompleted bool                       `json:"is_completed"`
		CompletedAt *time.Time                 `json:"completed_at,omitempty"`
		CreatedAt   time.Time                  `json:"created_at"`
		UpdatedAt   time.Time                  `json:"updated_at"`
	}
)
