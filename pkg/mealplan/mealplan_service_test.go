package mealplan

import (
	"context"
	"testing"
	"time"

	"household-backend/domain"
	"household-backend/entities"
	"household-backend/internal/database"
	"household-backend/pkg/pantry"
	"household-backend/pkg/recipe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MealPlanServiceSuite struct {
	suite.Suite
	pantryRepo   *pantry.InMemoryPantryRepository
	recipeRepo   *recipe.InMemoryRecipeRepository
	mealPlanRepo *InMemoryMealPlanRepository
	service      MealPlanService
	ctx          context.Context
}

func (s *MealPlanServiceSuite) SetupTest() {
	s.pantryRepo = pantry.NewInMemoryPantryRepository()
	s.recipeRepo = recipe.NewInMemoryRecipeRepository()
	s.mealPlanRepo = NewInMemoryMealPlanRepository()
	s.service = NewMealPlanService(s.mealPlanRepo, s.recipeRepo, s.pantryRepo, database.NewMemoryTxManager())
	s.ctx = context.Background()
}

func TestMealPlanServiceSuite(t *testing.T) {
	suite.Run(t, new(MealPlanServiceSuite))
}

func (s *MealPlanServiceSuite) stockPantry(name string, quantity float64, unit string) *entities.PantryItem {
	item := &entities.PantryItem{ID: uuid.New(), Name: name, Quantity: quantity, Unit: unit}
	s.Require().NoError(s.pantryRepo.AddPantryItem(s.ctx, item))
	return item
}

func (s *MealPlanServiceSuite) addRecipe(name string, servings int, ingredients ...entities.Ingredient) *entities.Recipe {
	rec := &entities.Recipe{
		ID:          uuid.New(),
		Name:        name,
		Ingredients: ingredients,
		Servings:    servings,
	}
	s.Require().NoError(s.recipeRepo.CreateRecipe(s.ctx, rec))
	return rec
}

func (s *MealPlanServiceSuite) addPlan(meals ...entities.MealPlanItem) *entities.MealPlan {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	plan := &entities.MealPlan{
		ID:        uuid.New(),
		Name:      "Week of March 2",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 7),
		Meals:     meals,
	}
	s.Require().NoError(s.mealPlanRepo.CreateMealPlan(s.ctx, plan))
	return plan
}

func (s *MealPlanServiceSuite) pantryQuantity(name, unit string) float64 {
	item, err := s.pantryRepo.FindByNameAndUnit(s.ctx, name, unit)
	s.Require().NoError(err)
	return item.Quantity
}

// TestCompleteMeal covers the debit path: scaled quantities come out of the
// pantry and every successful debit is recorded on the meal.
func (s *MealPlanServiceSuite) TestCompleteMeal() {
	s.Run("debits the pantry and records the removal", func() {
		s.SetupTest()
		stored := s.stockPantry("flour", 500, "g")
		rec := s.addRecipe("Pancakes", 2, entities.Ingredient{Name: "flour", Quantity: 100, Unit: "g"})
		plan := s.addPlan(entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeBreakfast, Servings: 2})

		res, err := s.service.CompleteMeal(s.ctx, plan.ID.String(), 0)
		s.Require().NoError(err)

		s.InDelta(400, s.pantryQuantity("flour", "g"), 1e-9)
		s.Require().True(res.Meals[0].IsCompleted)
		s.Require().Len(res.Meals[0].RemovedIngredients, 1)
		removed := res.Meals[0].RemovedIngredients[0]
		s.Equal("flour", removed.IngredientName)
		s.InDelta(100, removed.Quantity, 1e-9)
		s.Equal("g", removed.Unit)
		s.Equal(stored.ID.String(), removed.PantryItemID)
	})

	s.Run("scales quantities by servings", func() {
		s.SetupTest()
		s.stockPantry("oats", 10, "cup")
		rec := s.addRecipe("Porridge", 3, entities.Ingredient{Name: "oats", Quantity: 1.5, Unit: "cup"})
		plan := s.addPlan(entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeBreakfast, Servings: 6})

		res, err := s.service.CompleteMeal(s.ctx, plan.ID.String(), 0)
		s.Require().NoError(err)

		s.InDelta(3.0, res.Meals[0].RemovedIngredients[0].Quantity, 1e-9)
		s.InDelta(7.0, s.pantryQuantity("oats", "cup"), 1e-9)
	})

	s.Run("skips missing and insufficient ingredients", func() {
		s.SetupTest()
		s.stockPantry("flour", 500, "g")
		s.stockPantry("sugar", 10, "g")
		rec := s.addRecipe("Cake", 1,
			entities.Ingredient{Name: "flour", Quantity: 200, Unit: "g"},
			entities.Ingredient{Name: "sugar", Quantity: 100, Unit: "g"},
			entities.Ingredient{Name: "vanilla", Quantity: 5, Unit: "g"},
		)
		plan := s.addPlan(entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeSnack, Servings: 1})

		res, err := s.service.CompleteMeal(s.ctx, plan.ID.String(), 0)
		s.Require().NoError(err)

		s.Require().Len(res.Meals[0].RemovedIngredients, 1)
		s.Equal("flour", res.Meals[0].RemovedIngredients[0].IngredientName)
		s.InDelta(300, s.pantryQuantity("flour", "g"), 1e-9)
		s.InDelta(10, s.pantryQuantity("sugar", "g"), 1e-9)
	})

	s.Run("merges duplicate ingredient lines before debiting", func() {
		s.SetupTest()
		s.stockPantry("butter", 300, "g")
		rec := s.addRecipe("Croissants", 1,
			entities.Ingredient{Name: "butter", Quantity: 100, Unit: "g"},
			entities.Ingredient{Name: "butter", Quantity: 50, Unit: "g"},
		)
		plan := s.addPlan(entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeOther, Servings: 1})

		res, err := s.service.CompleteMeal(s.ctx, plan.ID.String(), 0)
		s.Require().NoError(err)

		s.Require().Len(res.Meals[0].RemovedIngredients, 1)
		s.InDelta(150, res.Meals[0].RemovedIngredients[0].Quantity, 1e-9)
		s.InDelta(150, s.pantryQuantity("butter", "g"), 1e-9)
	})
}

// TestCompleteMealErrors covers the guard conditions.
func (s *MealPlanServiceSuite) TestCompleteMealErrors() {
	s.Run("unknown plan", func() {
		s.SetupTest()
		_, err := s.service.CompleteMeal(s.ctx, uuid.NewString(), 0)
		s.Require().ErrorIs(err, domain.ErrMealPlanNotFound)
	})

	s.Run("index out of range", func() {
		s.SetupTest()
		rec := s.addRecipe("Toast", 1, entities.Ingredient{Name: "bread", Quantity: 2, Unit: "piece"})
		plan := s.addPlan(entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeBreakfast, Servings: 1})

		_, err := s.service.CompleteMeal(s.ctx, plan.ID.String(), 3)
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("Meal not found", vErr.Message)
	})

	s.Run("already completed", func() {
		s.SetupTest()
		rec := s.addRecipe("Toast", 1, entities.Ingredient{Name: "bread", Quantity: 2, Unit: "piece"})
		plan := s.addPlan(entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeBreakfast, Servings: 1})

		_, err := s.service.CompleteMeal(s.ctx, plan.ID.String(), 0)
		s.Require().NoError(err)

		_, err = s.service.CompleteMeal(s.ctx, plan.ID.String(), 0)
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("Meal is already marked as completed", vErr.Message)
	})

	s.Run("recipe deleted since planning", func() {
		s.SetupTest()
		rec := s.addRecipe("Salad", 1, entities.Ingredient{Name: "lettuce", Quantity: 1, Unit: "piece"})
		plan := s.addPlan(entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeLunch, Servings: 1})
		s.Require().NoError(s.recipeRepo.DeleteRecipe(s.ctx, rec.ID.String()))

		_, err := s.service.CompleteMeal(s.ctx, plan.ID.String(), 0)
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("Recipe not found", vErr.Message)
	})
}

// TestUncompleteMeal verifies completion is exactly reversible.
func (s *MealPlanServiceSuite) TestUncompleteMeal() {
	s.Run("restores the recorded debits and clears state", func() {
		s.SetupTest()
		s.stockPantry("flour", 500, "g")
		rec := s.addRecipe("Pancakes", 2, entities.Ingredient{Name: "flour", Quantity: 100, Unit: "g"})
		plan := s.addPlan(entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeBreakfast, Servings: 2})

		_, err := s.service.CompleteMeal(s.ctx, plan.ID.String(), 0)
		s.Require().NoError(err)
		s.InDelta(400, s.pantryQuantity("flour", "g"), 1e-9)

		res, err := s.service.UncompleteMeal(s.ctx, plan.ID.String(), 0)
		s.Require().NoError(err)

		s.InDelta(500, s.pantryQuantity("flour", "g"), 1e-9)
		s.False(res.Meals[0].IsCompleted)
		s.Nil(res.Meals[0].CompletedAt)
		s.Empty(res.Meals[0].RemovedIngredients)
	})

	s.Run("treats a vanished pantry item as a no-op", func() {
		s.SetupTest()
		stored := s.stockPantry("flour", 500, "g")
		rec := s.addRecipe("Pancakes", 2, entities.Ingredient{Name: "flour", Quantity: 100, Unit: "g"})
		plan := s.addPlan(entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeBreakfast, Servings: 2})

		_, err := s.service.CompleteMeal(s.ctx, plan.ID.String(), 0)
		s.Require().NoError(err)
		s.Require().NoError(s.pantryRepo.DeletePantryItem(s.ctx, stored.ID.String()))

		res, err := s.service.UncompleteMeal(s.ctx, plan.ID.String(), 0)
		s.Require().NoError(err)
		s.False(res.Meals[0].IsCompleted)

		_, err = s.pantryRepo.FindByNameAndUnit(s.ctx, "flour", "g")
		s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	})

	s.Run("rejects a meal that is not completed", func() {
		s.SetupTest()
		rec := s.addRecipe("Toast", 1, entities.Ingredient{Name: "bread", Quantity: 2, Unit: "piece"})
		plan := s.addPlan(entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeBreakfast, Servings: 1})

		_, err := s.service.UncompleteMeal(s.ctx, plan.ID.String(), 0)
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("Meal is not marked as completed", vErr.Message)
	})
}

// TestCreateMealPlanValidation covers the date-range rules.
func (s *MealPlanServiceSuite) TestCreateMealPlanValidation() {
	rec := s.addRecipe("Toast", 1, entities.Ingredient{Name: "bread", Quantity: 2, Unit: "piece"})

	s.Run("rejects an end date not after the start date", func() {
		_, err := s.service.CreateMealPlan(s.ctx, domain.CreateMealPlanRequest{
			Name:      "Backwards",
			StartDate: "2026-03-09",
			EndDate:   "2026-03-02",
			Meals: []domain.MealPlanItemRequest{
				{RecipeID: rec.ID.String(), Date: "2026-03-02", MealType: entities.MealTypeLunch, Servings: 1},
			},
		})
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
	})

	s.Run("rejects a meal outside the plan range", func() {
		_, err := s.service.CreateMealPlan(s.ctx, domain.CreateMealPlanRequest{
			Name:      "Week",
			StartDate: "2026-03-02",
			EndDate:   "2026-03-09",
			Meals: []domain.MealPlanItemRequest{
				{RecipeID: rec.ID.String(), Date: "2026-03-20", MealType: entities.MealTypeLunch, Servings: 1},
			},
		})
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
	})

	s.Run("accepts a valid plan", func() {
		res, err := s.service.CreateMealPlan(s.ctx, domain.CreateMealPlanRequest{
			Name:      "Week",
			StartDate: "2026-03-02",
			EndDate:   "2026-03-09",
			Meals: []domain.MealPlanItemRequest{
				{RecipeID: rec.ID.String(), Date: "2026-03-03", MealType: entities.MealTypeDinner, Servings: 2},
			},
		})
		s.Require().NoError(err)
		s.Require().Len(res.Meals, 1)
		s.Equal("Toast", res.Meals[0].RecipeName)
	})
}
