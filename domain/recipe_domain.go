package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessSaveRecipe   = "recipe saved successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"

	MessageFailedGetRecipes   = "failed to retrieve recipes"
	MessageFailedSaveRecipe   = "failed to save recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	IngredientRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"required,gt=0"`
		Unit     string  `json:"unit" validate:"required"`
		Category string  `json:"category,omitempty"`
	}

	CreateRecipeRequest struct {
		Name            string              `json:"name" validate:"required,min=2"`
		Description     string              `json:"description,omitempty"`
		Ingredients     []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
		Instructions    []string            `json:"instructions"`
		PrepTimeMinutes int                 `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int                 `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        int                 `json:"servings" validate:"required,gt=0"`
		ImageURL        string              `json:"image_url,omitempty"`
		Tags            []string            `json:"tags,omitempty"`
	}

	UpdateRecipeRequest struct {
		Name            string              `json:"name" validate:"omitempty,min=2"`
		Description     string              `json:"description,omitempty"`
		Ingredients     []IngredientRequest `json:"ingredients" validate:"omitempty,min=1,dive"`
		Instructions    []string            `json:"instructions,omitempty"`
		PrepTimeMinutes int                 `json:"prep_time_minutes" validate:"omitempty,min=0"`
		CookTimeMinutes int                 `json:"cook_time_minutes" validate:"omitempty,min=0"`
		Servings        int                 `json:"servings" validate:"omitempty,gt=0"`
		ImageURL        string              `json:"image_url,omitempty"`
		Tags            []string            `json:"tags,omitempty"`
	}

	IngredientResponse struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Category string  `json:"category,omitempty"`
	}

	RecipeResponse struct {
		ID              string               `json:"id"`
		Name            string               `json:"name"`
		Description     string               `json:"description,omitempty"`
		Ingredients     []IngredientResponse `json:"ingredients"`
		Instructions    []string             `json:"instructions"`
		PrepTimeMinutes int                  `json:"prep_time_minutes"`
		CookTimeMinutes int                  `json:"cook_time_minutes"`
		Servings        int                  `json:"servings"`
		ImageURL        string               `json:"image_url,omitempty"`
		Tags            []string             `json:"tags,omitempty"`
		CreatedAt       time.Time            `json:"created_at"`
		UpdatedAt       time.Time            `json:"updated_at"`
	}
)
