package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetMealPlans    = "meal plans retrieved successfully"
	MessageSuccessSaveMealPlan    = "meal plan saved successfully"
	MessageSuccessUpdateMealPlan  = "meal plan updated successfully"
	MessageSuccessDeleteMealPlan  = "meal plan deleted successfully"
	MessageSuccessCompleteMeal    = "meal marked as completed"
	MessageSuccessUncompleteMeal  = "meal marked as uncompleted"

	MessageFailedGetMealPlans   = "failed to retrieve meal plans"
	MessageFailedSaveMealPlan   = "failed to save meal plan"
	MessageFailedUpdateMealPlan = "failed to update meal plan"
	MessageFailedDeleteMealPlan = "failed to delete meal plan"
	MessageFailedCompleteMeal   = "failed to complete meal"
	MessageFailedUncompleteMeal = "failed to uncomplete meal"

	ErrMealPlanNotFound = errors.New("meal plan not found")
)

type (
	MealPlanItemRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Date     string `json:"date" validate:"required"`
		MealType string `json:"meal_type" validate:"required"`
		Servings int    `json:"servings" validate:"required,gt=0"`
	}

	CreateMealPlanRequest struct {
		Name      string                `json:"name" validate:"required,min=2"`
		StartDate string                `json:"start_date" validate:"required"`
		EndDate   string                `json:"end_date" validate:"required"`
		Meals     []MealPlanItemRequest `json:"meals" validate:"required,min=1,dive"`
	}

	UpdateMealPlanRequest struct {
		Name      string                `json:"name" validate:"required,min=2"`
		StartDate string                `json:"start_date" validate:"required"`
		EndDate   string                `json:"end_date" validate:"required"`
		Meals     []MealPlanItemRequest `json:"meals" validate:"required,min=1,dive"`
	}

	RemovedIngredientResponse struct {
		IngredientName string  `json:"ingredient_name"`
		Quantity       float64 `json:"quantity"`
		Unit           string  `json:"unit"`
		PantryItemID   string  `json:"pantry_item_id"`
	}

	MealPlanItemResponse struct {
		RecipeID           string                      `json:"recipe_id"`
		RecipeName         string                      `json:"recipe_name,omitempty"`
		Date               time.Time                   `json:"date"`
		MealType           string                      `json:"meal_type"`
		Servings           int                         `json:"servings"`
		IsCompleted        bool                        `json:"is_completed"`
		CompletedAt        *time.Time                  `json:"completed_at,omitempty"`
		RemovedIngredients []RemovedIngredientResponse `json:"removed_ingredients,omitempty"`
	}

	MealPlanResponse struct {
		ID        string                 `json:"id"`
		Name      string                 `json:"name"`
		StartDate time.Time              `json:"start_date"`
		EndDate   time.Time              `json:"end_date"`
		Meals     []MealPlanItemResponse `json:"meals"`
		CreatedAt time.Time              `json:"created_at"`
		UpdatedAt time.Time              `json:"updated_at"`
	}
)
