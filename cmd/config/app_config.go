package config

import (
	"os"
	"time"

	"household-backend/internal/api/handlers"
	"household-backend/internal/api/routes"
	"household-backend/internal/database"
	"household-backend/internal/middleware"
	"household-backend/internal/utils"
	"household-backend/pkg/mealplan"
	"household-backend/pkg/pantry"
	"household-backend/pkg/recipe"
	"household-backend/pkg/shoppinglist"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Transactions
	txManager := database.NewTxManager(db)

	// Repository
	pantryRepository := pantry.NewPantryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)

	// Service
	pantryService := pantry.NewPantryService(pantryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, recipeRepository, pantryRepository, txManager)
	shoppingListService := shoppinglist.NewShoppingListService(
		shoppingListRepository,
		mealPlanRepository,
		recipeRepository,
		pantryRepository,
		txManager,
	)

	// Handler
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	mealPlanHandler := handlers.NewMealPlanHandler(mealPlanService, validator)
	shoppingListHandler := handlers.NewShoppingListHandler(shoppingListService, validator)
	unitHandler := handlers.NewUnitHandler()

	// routes
	routesConfig := routes.Config{
		App:                 app,
		PantryHandler:       pantryHandler,
		RecipeHandler:       recipeHandler,
		MealPlanHandler:     mealPlanHandler,
		ShoppingListHandler: shoppingListHandler,
		UnitHandler:         unitHandler,
		Middleware:          middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
