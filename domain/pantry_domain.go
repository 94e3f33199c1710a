package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"

	ErrPantryItemNotFound = errors.New("pantry item not found")
)

type (
	AddPantryItemRequest struct {
		Name       string  `json:"name" validate:"required"`
		Quantity   float64 `json:"quantity" validate:"required,gt=0"`
		Unit       string  `json:"unit" validate:"required"`
		Category   string  `json:"category,omitempty"`
		ExpiryDate string  `json:"expiry_date,omitempty"`
	}

	UpdatePantryItemRequest struct {
		Name       string  `json:"name" validate:"omitempty"`
		Quantity   float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit       string  `json:"unit" validate:"omitempty"`
		Category   string  `json:"category,omitempty"`
		ExpiryDate string  `json:"expiry_date,omitempty"`
	}

	PantryItemResponse struct {
		ID         string     `json:"id"`
		Name       string     `json:"name"`
		Quantity   float64    `json:"quantity"`
		Unit       string     `json:"unit"`
		Category   string     `json:"category,omitempty"`
		ExpiryDate *time.Time `json:"expiry_date,omitempty"`
		CreatedAt  time.Time  `json:"created_at"`
		UpdatedAt  time.Time  `json:"updated_at"`
	}
)
