package shoppinglist

import (
	"context"
	"testing"
	"time"

	"household-backend/domain"
	"household-backend/entities"
	"household-backend/internal/database"
	"household-backend/pkg/mealplan"
	"household-backend/pkg/pantry"
	"household-backend/pkg/recipe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ShoppingListServiceSuite struct {
	suite.Suite
	listRepo     *InMemoryShoppingListRepository
	mealPlanRepo *mealplan.InMemoryMealPlanRepository
	recipeRepo   *recipe.InMemoryRecipeRepository
	pantryRepo   *pantry.InMemoryPantryRepository
	service      ShoppingListService
	ctx          context.Context
}

func (s *ShoppingListServiceSuite) SetupTest() {
	s.listRepo = NewInMemoryShoppingListRepository()
	s.mealPlanRepo = mealplan.NewInMemoryMealPlanRepository()
	s.recipeRepo = recipe.NewInMemoryRecipeRepository()
	s.pantryRepo = pantry.NewInMemoryPantryRepository()
	s.service = NewShoppingListService(s.listRepo, s.mealPlanRepo, s.recipeRepo, s.pantryRepo, database.NewMemoryTxManager())
	s.ctx = context.Background()
}

func TestShoppingListServiceSuite(t *testing.T) {
	suite.Run(t, new(ShoppingListServiceSuite))
}

func (s *ShoppingListServiceSuite) addRecipe(name string, servings int, ingredients ...entities.Ingredient) *entities.Recipe {
	rec := &entities.Recipe{ID: uuid.New(), Name: name, Ingredients: ingredients, Servings: servings}
	s.Require().NoError(s.recipeRepo.CreateRecipe(s.ctx, rec))
	return rec
}

func (s *ShoppingListServiceSuite) addPlan(name string, meals ...entities.MealPlanItem) *entities.MealPlan {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	plan := &entities.MealPlan{
		ID:        uuid.New(),
		Name:      name,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 7),
		Meals:     meals,
	}
	s.Require().NoError(s.mealPlanRepo.CreateMealPlan(s.ctx, plan))
	return plan
}

func (s *ShoppingListServiceSuite) addList(items ...entities.ShoppingListItem) *entities.ShoppingList {
	list := &entities.ShoppingList{ID: uuid.New(), Name: "Groceries", Items: items}
	s.Require().NoError(s.listRepo.CreateShoppingList(s.ctx, list))
	return list
}

// TestCreateFromMealPlan exercises ingredient aggregation across meals.
func (s *ShoppingListServiceSuite) TestCreateFromMealPlan() {
	s.Run("sums scaled quantities per (name, unit)", func() {
		s.SetupTest()
		rec := s.addRecipe("Omelette", 4, entities.Ingredient{Name: "eggs", Quantity: 2, Unit: "piece"})
		plan := s.addPlan("March",
			entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeBreakfast, Servings: 4},
			entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeBreakfast, Servings: 2},
		)

		res, err := s.service.CreateFromMealPlan(s.ctx, domain.GenerateShoppingListRequest{MealPlanID: plan.ID.String()})
		s.Require().NoError(err)

		s.Require().Len(res.Items, 1)
		s.Equal("eggs", res.Items[0].Name)
		s.InDelta(3, res.Items[0].Quantity, 1e-9)
		s.Equal("Shopping List for March", res.Name)
		s.Equal("Generated from meal plan: March", res.Description)
		s.Equal(plan.ID.String(), res.MealPlanID)
	})

	s.Run("keeps the first occurrence's category and provenance", func() {
		s.SetupTest()
		first := s.addRecipe("Bolognese", 2, entities.Ingredient{Name: "onion", Quantity: 1, Unit: "piece", Category: "vegetables"})
		second := s.addRecipe("Curry", 2, entities.Ingredient{Name: "onion", Quantity: 2, Unit: "piece", Category: "produce"})
		plan := s.addPlan("Week",
			entities.MealPlanItem{RecipeID: first.ID, MealType: entities.MealTypeDinner, Servings: 2},
			entities.MealPlanItem{RecipeID: second.ID, MealType: entities.MealTypeDinner, Servings: 2},
		)

		res, err := s.service.CreateFromMealPlan(s.ctx, domain.GenerateShoppingListRequest{MealPlanID: plan.ID.String()})
		s.Require().NoError(err)

		s.Require().Len(res.Items, 1)
		s.InDelta(3, res.Items[0].Quantity, 1e-9)
		s.Equal("vegetables", res.Items[0].Category)
		s.Equal(first.ID.String(), res.Items[0].RecipeID)
		s.Equal("onion", res.Items[0].OriginalIngredientName)
	})

	s.Run("skips meals whose recipe is gone", func() {
		s.SetupTest()
		kept := s.addRecipe("Soup", 1, entities.Ingredient{Name: "carrot", Quantity: 2, Unit: "piece"})
		gone := s.addRecipe("Stew", 1, entities.Ingredient{Name: "beef", Quantity: 300, Unit: "g"})
		plan := s.addPlan("Week",
			entities.MealPlanItem{RecipeID: kept.ID, MealType: entities.MealTypeLunch, Servings: 1},
			entities.MealPlanItem{RecipeID: gone.ID, MealType: entities.MealTypeDinner, Servings: 1},
		)
		s.Require().NoError(s.recipeRepo.DeleteRecipe(s.ctx, gone.ID.String()))

		res, err := s.service.CreateFromMealPlan(s.ctx, domain.GenerateShoppingListRequest{MealPlanID: plan.ID.String()})
		s.Require().NoError(err)

		s.Require().Len(res.Items, 1)
		s.Equal("carrot", res.Items[0].Name)
	})

	s.Run("respects an explicit name", func() {
		s.SetupTest()
		rec := s.addRecipe("Soup", 1, entities.Ingredient{Name: "carrot", Quantity: 2, Unit: "piece"})
		plan := s.addPlan("Week", entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeLunch, Servings: 1})

		res, err := s.service.CreateFromMealPlan(s.ctx, domain.GenerateShoppingListRequest{
			MealPlanID: plan.ID.String(),
			Name:       "Saturday run",
		})
		s.Require().NoError(err)
		s.Equal("Saturday run", res.Name)
	})

	s.Run("rejects an unknown meal plan", func() {
		s.SetupTest()
		_, err := s.service.CreateFromMealPlan(s.ctx, domain.GenerateShoppingListRequest{MealPlanID: uuid.NewString()})
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("Meal plan not found", vErr.Message)
	})

	s.Run("rejects generated items with no usable quantity", func() {
		s.SetupTest()
		rec := s.addRecipe("Broth", 2, entities.Ingredient{Name: "water", Quantity: 0, Unit: "l"})
		plan := s.addPlan("Week", entities.MealPlanItem{RecipeID: rec.ID, MealType: entities.MealTypeDinner, Servings: 2})

		_, err := s.service.CreateFromMealPlan(s.ctx, domain.GenerateShoppingListRequest{MealPlanID: plan.ID.String()})
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("Invalid shopping list item", vErr.Message)
	})
}

// TestUpdateShoppingList verifies a PUT replaces the item set without losing
// purchase state or recipe provenance.
func (s *ShoppingListServiceSuite) TestUpdateShoppingList() {
	s.Run("round-trips purchase state and provenance", func() {
		s.SetupTest()
		recipeID := uuid.New()
		list := s.addList(entities.ShoppingListItem{
			Name:                   "milk",
			Quantity:               1,
			Unit:                   "l",
			IsPurchased:            true,
			InPantry:               true,
			RecipeID:               &recipeID,
			OriginalIngredientName: "whole milk",
		})

		res, err := s.service.UpdateShoppingList(s.ctx, list.ID.String(), domain.UpdateShoppingListRequest{
			Name: "Groceries",
			Items: []domain.ShoppingListItemRequest{{
				Name:                   "milk",
				Quantity:               1,
				Unit:                   "l",
				IsPurchased:            true,
				InPantry:               true,
				RecipeID:               recipeID.String(),
				OriginalIngredientName: "whole milk",
			}},
		})
		s.Require().NoError(err)

		s.Require().Len(res.Items, 1)
		s.True(res.Items[0].IsPurchased)
		s.True(res.Items[0].InPantry)
		s.Equal(recipeID.String(), res.Items[0].RecipeID)
		s.Equal("whole milk", res.Items[0].OriginalIngredientName)
	})

	s.Run("rejects a non-positive quantity", func() {
		s.SetupTest()
		list := s.addList(entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l"})

		_, err := s.service.UpdateShoppingList(s.ctx, list.ID.String(), domain.UpdateShoppingListRequest{
			Name:  "Groceries",
			Items: []domain.ShoppingListItemRequest{{Name: "milk", Quantity: 0, Unit: "l"}},
		})
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Require().Len(vErr.Issues, 1)
		s.Equal("items[0].quantity", vErr.Issues[0].Field)
	})

	s.Run("rejects an unknown list", func() {
		s.SetupTest()
		_, err := s.service.UpdateShoppingList(s.ctx, uuid.NewString(), domain.UpdateShoppingListRequest{Name: "Groceries"})
		s.Require().ErrorIs(err, domain.ErrShoppingListNotFound)
	})
}

// TestRemoveItemByID verifies derived ids are stable addresses.
func (s *ShoppingListServiceSuite) TestRemoveItemByID() {
	list := s.addList(
		entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l"},
		entities.ShoppingListItem{Name: "bread", Quantity: 2, Unit: "piece"},
	)

	res, err := s.service.GetShoppingListByID(s.ctx, list.ID.String())
	s.Require().NoError(err)
	itemID := res.Items[0].ID

	res, err = s.service.RemoveItemByID(s.ctx, list.ID.String(), itemID)
	s.Require().NoError(err)
	s.Require().Len(res.Items, 1)
	s.Equal("bread", res.Items[0].Name)

	_, err = s.service.RemoveItemByID(s.ctx, list.ID.String(), itemID)
	var vErr *domain.ValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Equal("Item not found in shopping list", vErr.Message)
}

// TestToggleItemPurchasedByID covers the id-addressed toggle and its
// increase-or-create pantry side effect.
func (s *ShoppingListServiceSuite) TestToggleItemPurchasedByID() {
	s.Run("creates a missing pantry item on auto-add", func() {
		s.SetupTest()
		list := s.addList(entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l", Category: "dairy"})
		res, err := s.service.GetShoppingListByID(s.ctx, list.ID.String())
		s.Require().NoError(err)

		res, err = s.service.ToggleItemPurchasedByID(s.ctx, list.ID.String(), res.Items[0].ID, true, true)
		s.Require().NoError(err)
		s.True(res.Items[0].IsPurchased)

		item, err := s.pantryRepo.FindByNameAndUnit(s.ctx, "milk", "l")
		s.Require().NoError(err)
		s.InDelta(1, item.Quantity, 1e-9)
		s.Equal("dairy", item.Category)
	})

	s.Run("credits an existing pantry item on auto-add", func() {
		s.SetupTest()
		s.Require().NoError(s.pantryRepo.AddPantryItem(s.ctx, &entities.PantryItem{
			ID: uuid.New(), Name: "milk", Quantity: 2, Unit: "l",
		}))
		list := s.addList(entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l"})
		res, err := s.service.GetShoppingListByID(s.ctx, list.ID.String())
		s.Require().NoError(err)

		_, err = s.service.ToggleItemPurchasedByID(s.ctx, list.ID.String(), res.Items[0].ID, true, true)
		s.Require().NoError(err)

		item, err := s.pantryRepo.FindByNameAndUnit(s.ctx, "milk", "l")
		s.Require().NoError(err)
		s.InDelta(3, item.Quantity, 1e-9)
	})

	s.Run("does not sync list completion", func() {
		s.SetupTest()
		list := s.addList(entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l"})
		res, err := s.service.GetShoppingListByID(s.ctx, list.ID.String())
		s.Require().NoError(err)

		res, err = s.service.ToggleItemPurchasedByID(s.ctx, list.ID.String(), res.Items[0].ID, true, false)
		s.Require().NoError(err)
		s.False(res.IsCompleted)
	})
}

// TestToggleItemPurchased covers the legacy index path and its bidirectional
// whole-list completion sync.
func (s *ShoppingListServiceSuite) TestToggleItemPurchased() {
	s.Run("completes the list once every item is purchased", func() {
		s.SetupTest()
		list := s.addList(
			entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l"},
			entities.ShoppingListItem{Name: "bread", Quantity: 2, Unit: "piece"},
		)

		res, err := s.service.ToggleItemPurchased(s.ctx, list.ID.String(), 0)
		s.Require().NoError(err)
		s.False(res.IsCompleted)

		res, err = s.service.ToggleItemPurchased(s.ctx, list.ID.String(), 1)
		s.Require().NoError(err)
		s.True(res.IsCompleted)
		s.NotNil(res.CompletedAt)
	})

	s.Run("reopens a completed list when an item is untoggled", func() {
		s.SetupTest()
		list := s.addList(
			entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l", IsPurchased: true},
			entities.ShoppingListItem{Name: "bread", Quantity: 2, Unit: "piece"},
		)

		res, err := s.service.ToggleItemPurchased(s.ctx, list.ID.String(), 1)
		s.Require().NoError(err)
		s.Require().True(res.IsCompleted)

		res, err = s.service.ToggleItemPurchased(s.ctx, list.ID.String(), 0)
		s.Require().NoError(err)
		s.False(res.IsCompleted)
		for _, item := range res.Items {
			s.False(item.IsPurchased)
		}
	})

	s.Run("rejects an out-of-range index", func() {
		s.SetupTest()
		list := s.addList(entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l"})

		_, err := s.service.ToggleItemPurchased(s.ctx, list.ID.String(), 5)
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("Invalid item index", vErr.Message)
	})
}

// TestAddItem covers validation and the new item's starting state.
func (s *ShoppingListServiceSuite) TestAddItem() {
	s.Run("appends an unpurchased, not-in-pantry item", func() {
		s.SetupTest()
		s.Require().NoError(s.pantryRepo.AddPantryItem(s.ctx, &entities.PantryItem{
			ID: uuid.New(), Name: "milk", Quantity: 2, Unit: "l",
		}))
		list := s.addList()

		res, err := s.service.AddItem(s.ctx, list.ID.String(), domain.AddShoppingItemData{
			Ingredient: "milk", Quantity: 1, Unit: "l", Category: "dairy",
		})
		s.Require().NoError(err)
		s.Require().Len(res.Items, 1)
		s.Equal("milk", res.Items[0].Name)
		s.Equal("dairy", res.Items[0].Category)
		s.False(res.Items[0].IsPurchased)
		s.False(res.Items[0].InPantry)
	})

	s.Run("rejects missing required fields", func() {
		s.SetupTest()
		list := s.addList()

		_, err := s.service.AddItem(s.ctx, list.ID.String(), domain.AddShoppingItemData{Ingredient: "milk"})
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Len(vErr.Issues, 2)
	})
}

// TestTransferItemsToPantry covers both selection modes.
func (s *ShoppingListServiceSuite) TestTransferItemsToPantry() {
	s.Run("transfers selected ids and marks them purchased", func() {
		s.SetupTest()
		list := s.addList(
			entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l"},
			entities.ShoppingListItem{Name: "bread", Quantity: 2, Unit: "piece"},
		)
		res, err := s.service.GetShoppingListByID(s.ctx, list.ID.String())
		s.Require().NoError(err)

		res, err = s.service.TransferItemsToPantry(s.ctx, list.ID.String(), []string{res.Items[0].ID})
		s.Require().NoError(err)
		s.True(res.Items[0].IsPurchased)
		s.False(res.Items[1].IsPurchased)

		_, err = s.pantryRepo.FindByNameAndUnit(s.ctx, "milk", "l")
		s.Require().NoError(err)
		_, err = s.pantryRepo.FindByNameAndUnit(s.ctx, "bread", "piece")
		s.Require().Error(err)
	})

	s.Run("transfers every purchased item when no ids are given", func() {
		s.SetupTest()
		list := s.addList(
			entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l", IsPurchased: true},
			entities.ShoppingListItem{Name: "bread", Quantity: 2, Unit: "piece"},
		)

		res, err := s.service.TransferItemsToPantry(s.ctx, list.ID.String(), nil)
		s.Require().NoError(err)
		s.False(res.Items[1].IsPurchased)

		_, err = s.pantryRepo.FindByNameAndUnit(s.ctx, "milk", "l")
		s.Require().NoError(err)
		_, err = s.pantryRepo.FindByNameAndUnit(s.ctx, "bread", "piece")
		s.Require().Error(err)
	})
}

// TestCompleteShoppingList covers completion and the optional merge back into
// the pantry.
func (s *ShoppingListServiceSuite) TestCompleteShoppingList() {
	s.Run("marks every item purchased and moves them into the pantry", func() {
		s.SetupTest()
		s.Require().NoError(s.pantryRepo.AddPantryItem(s.ctx, &entities.PantryItem{
			ID: uuid.New(), Name: "milk", Quantity: 1, Unit: "l",
		}))
		list := s.addList(
			entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l"},
			entities.ShoppingListItem{Name: "bread", Quantity: 2, Unit: "piece"},
		)

		res, err := s.service.CompleteShoppingList(s.ctx, list.ID.String(), true)
		s.Require().NoError(err)
		s.True(res.IsCompleted)
		for _, item := range res.Items {
			s.True(item.IsPurchased)
		}

		milk, err := s.pantryRepo.FindByNameAndUnit(s.ctx, "milk", "l")
		s.Require().NoError(err)
		s.InDelta(2, milk.Quantity, 1e-9)

		bread, err := s.pantryRepo.FindByNameAndUnit(s.ctx, "bread", "piece")
		s.Require().NoError(err)
		s.InDelta(2, bread.Quantity, 1e-9)
	})

	s.Run("leaves the pantry alone without addToPantry", func() {
		s.SetupTest()
		list := s.addList(entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l"})

		res, err := s.service.CompleteShoppingList(s.ctx, list.ID.String(), false)
		s.Require().NoError(err)
		s.True(res.IsCompleted)

		_, err = s.pantryRepo.FindByNameAndUnit(s.ctx, "milk", "l")
		s.Require().Error(err)
	})

	s.Run("rejects a second completion", func() {
		s.SetupTest()
		list := s.addList(entities.ShoppingListItem{Name: "milk", Quantity: 1, Unit: "l"})

		_, err := s.service.CompleteShoppingList(s.ctx, list.ID.String(), false)
		s.Require().NoError(err)

		_, err = s.service.CompleteShoppingList(s.ctx, list.ID.String(), false)
		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.Equal("Shopping list is already completed", vErr.Message)
	})

	s.Run("rejects an unknown list", func() {
		s.SetupTest()
		_, err := s.service.CompleteShoppingList(s.ctx, uuid.NewString(), false)
		s.Require().ErrorIs(err, domain.ErrShoppingListNotFound)
	})
}
