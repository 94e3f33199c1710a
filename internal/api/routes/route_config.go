package routes

import (
	"household-backend/internal/api/handlers"
	"household-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	PantryHandler       handlers.PantryHandler
	RecipeHandler       handlers.RecipeHandler
	MealPlanHandler     handlers.MealPlanHandler
	ShoppingListHandler handlers.ShoppingListHandler
	UnitHandler         handlers.UnitHandler
	Middleware          middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Pantry()
	c.Recipes()
	c.MealPlans()
	c.ShoppingLists()
	c.Units()
	c.GuestRoute()
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry")

	pantry.Get("/expiring", c.PantryHandler.GetExpiringItems)

	// Basic CRUD operations
	pantry.Post("", c.PantryHandler.AddPantryItem)
	pantry.Get("", c.PantryHandler.GetPantryItems)
	pantry.Get("/:id", c.PantryHandler.GetPantryItemDetails)
	pantry.Put("/:id", c.PantryHandler.UpdatePantryItem)
	pantry.Delete("/:id", c.PantryHandler.DeletePantryItem)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Post("", c.RecipeHandler.CreateRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetails)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) MealPlans() {
	mealPlans := c.App.Group("/api/v1/meal-plans")

	// Basic CRUD operations
	mealPlans.Post("", c.MealPlanHandler.CreateMealPlan)
	mealPlans.Get("", c.MealPlanHandler.GetMealPlans)
	mealPlans.Get("/:id", c.MealPlanHandler.GetMealPlanDetails)
	mealPlans.Put("/:id", c.MealPlanHandler.UpdateMealPlan)
	mealPlans.Delete("/:id", c.MealPlanHandler.DeleteMealPlan)

	// Meal completion
	mealPlans.Post("/:id/meals/:index/complete", c.MealPlanHandler.CompleteMeal)
	mealPlans.Delete("/:id/meals/:index/complete", c.MealPlanHandler.UncompleteMeal)
}

func (c *Config) ShoppingLists() {
	shoppingLists := c.App.Group("/api/v1/shopping-lists")

	shoppingLists.Post("/from-meal-plan", c.ShoppingListHandler.CreateFromMealPlan)

	// Basic CRUD operations
	shoppingLists.Post("", c.ShoppingListHandler.CreateShoppingList)
	shoppingLists.Get("", c.ShoppingListHandler.GetShoppingLists)
	shoppingLists.Get("/:id", c.ShoppingListHandler.GetShoppingListDetails)
	shoppingLists.Put("/:id", c.ShoppingListHandler.UpdateShoppingList)
	shoppingLists.Patch("/:id", c.ShoppingListHandler.PatchShoppingList)
	shoppingLists.Delete("/:id", c.ShoppingListHandler.DeleteShoppingList)
}

func (c *Config) Units() {
	c.App.Get("/api/v1/units", c.UnitHandler.GetUnits)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
