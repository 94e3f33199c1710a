package recipe

import (
	"context"
	"errors"

	"household-backend/domain"
	"household-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		SearchRecipes(ctx context.Context, name string) ([]domain.RecipeResponse, error)
		GetRecipesByTag(ctx context.Context, tag string) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	if issues := validateIngredientUnits(req.Ingredients); len(issues) > 0 {
		return domain.RecipeResponse{}, domain.NewValidationError("Invalid recipe data", issues...)
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		Name:            req.Name,
		Description:     req.Description,
		Ingredients:     toIngredients(req.Ingredients),
		Instructions:    req.Instructions,
		PrepTimeMinutes: req.PrepTimeMinutes,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		ImageURL:        req.ImageURL,
		Tags:            req.Tags,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if req.Name != "" {
		recipe.Name = req.Name
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if len(req.Ingredients) > 0 {
		if issues := validateIngredientUnits(req.Ingredients); len(issues) > 0 {
			return domain.RecipeResponse{}, domain.NewValidationError("Invalid recipe data", issues...)
		}
		recipe.Ingredients = toIngredients(req.Ingredients)
	}
	if len(req.Instructions) > 0 {
		recipe.Instructions = req.Instructions
	}
	if req.PrepTimeMinutes > 0 {
		recipe.PrepTimeMinutes = req.PrepTimeMinutes
	}
	if req.CookTimeMinutes > 0 {
		recipe.CookTimeMinutes = req.CookTimeMinutes
	}
	if req.Servings > 0 {
		recipe.Servings = req.Servings
	}
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}
	if len(req.Tags) > 0 {
		recipe.Tags = req.Tags
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, name string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) GetRecipesByTag(ctx context.Context, tag string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.FindByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

func validateIngredientUnits(ingredients []domain.IngredientRequest) []domain.ValidationIssue {
	var issues []domain.ValidationIssue
	for _, ingredient := range ingredients {
		if !domain.IsValidUnit(ingredient.Unit) {
			issues = append(issues, domain.ValidationIssue{
				Field:   "ingredients",
				Message: "unknown measurement unit for ingredient " + ingredient.Name,
				Code:    "unit",
			})
		}
	}
	return issues
}

func toIngredients(reqs []domain.IngredientRequest) entities.Ingredients {
	ingredients := make(entities.Ingredients, 0, len(reqs))
	for _, req := range reqs {
		ingredients = append(ingredients, entities.Ingredient{
			Name:     req.Name,
			Quantity: req.Quantity,
			Unit:     req.Unit,
			Category: req.Category,
		})
	}
	return ingredients
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.IngredientResponse, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredients = append(ingredients, domain.IngredientResponse{
			Name:     ingredient.Name,
			Quantity: ingredient.Quantity,
			Unit:     ingredient.Unit,
			Category: ingredient.Category,
		})
	}
	return domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Name:            recipe.Name,
		Description:     recipe.Description,
		Ingredients:     ingredients,
		Instructions:    recipe.Instructions,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		Servings:        recipe.Servings,
		ImageURL:        recipe.ImageURL,
		Tags:            recipe.Tags,
		CreatedAt:       recipe.CreatedAt,
		UpdatedAt:       recipe.UpdatedAt,
	}
}

func toRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, toRecipeResponse(recipe))
	}
	return responses
}
