package mealplan

import (
	"context"
	"errors"
	"time"

	"household-backend/domain"
	"household-backend/entities"
	"household-backend/internal/database"
	"household-backend/pkg/pantry"
	"household-backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest) (domain.MealPlanResponse, error)
		UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest) (domain.MealPlanResponse, error)
		DeleteMealPlan(ctx context.Context, id string) error
		GetMealPlanByID(ctx context.Context, id string) (domain.MealPlanResponse, error)
		GetMealPlans(ctx context.Context) ([]domain.MealPlanResponse, error)
		GetActiveMealPlans(ctx context.Context) ([]domain.MealPlanResponse, error)
		GetMealPlansIncludingDate(ctx context.Context, date time.Time) ([]domain.MealPlanResponse, error)
		CompleteMeal(ctx context.Context, mealPlanID string, mealIndex int) (domain.MealPlanResponse, error)
		UncompleteMeal(ctx context.Context, mealPlanID string, mealIndex int) (domain.MealPlanResponse, error)
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		recipeRepository   recipe.RecipeRepository
		pantryRepository   pantry.PantryRepository
		tx                 database.TxManager
	}
)

func NewMealPlanService(
	mealPlanRepository MealPlanRepository,
	recipeRepository recipe.RecipeRepository,
	pantryRepository pantry.PantryRepository,
	tx database.TxManager,
) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		recipeRepository:   recipeRepository,
		pantryRepository:   pantryRepository,
		tx:                 tx,
	}
}

// CompleteMeal marks a planned meal as cooked and debits the pantry for its
// scaled ingredients. Debits are best effort: an ingredient missing from the
// pantry, or short on stock, is skipped without failing the transition, since
// the household cooked with something the system doesn't track. Every debit
// that did succeed is recorded on the meal so UncompleteMeal can restore it
// exactly. The whole operation runs in one transaction.
func (s *mealPlanService) CompleteMeal(ctx context.Context, mealPlanID string, mealIndex int) (domain.MealPlanResponse, error) {
	var plan *entities.MealPlan

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.mealPlanRepository.GetMealPlanByID(ctx, mealPlanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrMealPlanNotFound
			}
			return err
		}

		if mealIndex < 0 || mealIndex >= len(p.Meals) {
			return domain.NewValidationError("Meal not found")
		}

		meal := &p.Meals[mealIndex]
		if meal.IsCompleted {
			return domain.NewValidationError("Meal is already marked as completed")
		}

		rec, err := s.recipeRepository.GetRecipeByID(ctx, meal.RecipeID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NewValidationError("Recipe not found")
			}
			return err
		}

		removed := make([]entities.RemovedIngredient, 0, len(rec.Ingredients))
		for _, ingredient := range mergeIngredients(rec.Ingredients) {
			required := ingredient.Quantity * float64(meal.Servings) / float64(rec.Servings)

			item, err := s.pantryRepository.ReduceQuantityByNameAndUnit(ctx, ingredient.Name, ingredient.Unit, required)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			if item == nil {
				// insufficient stock, skip
				continue
			}

			removed = append(removed, entities.RemovedIngredient{
				IngredientName: ingredient.Name,
				Quantity:       required,
				Unit:           ingredient.Unit,
				PantryItemID:   item.ID.String(),
			})
		}

		meal.MarkAsCompleted(removed)
		if err := s.mealPlanRepository.UpdateMealPlan(ctx, p); err != nil {
			return err
		}

		plan = p
		return nil
	})
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	return s.toMealPlanResponse(ctx, plan), nil
}

// UncompleteMeal reverses a completion by replaying the meal's recorded
// debits, in order, as credits. An entry whose pantry item has since vanished
// is a no-op; no pantry item is ever created here.
func (s *mealPlanService) UncompleteMeal(ctx context.Context, mealPlanID string, mealIndex int) (domain.MealPlanResponse, error) {
	var plan *entities.MealPlan

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.mealPlanRepository.GetMealPlanByID(ctx, mealPlanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrMealPlanNotFound
			}
			return err
		}

		if mealIndex < 0 || mealIndex >= len(p.Meals) {
			return domain.NewValidationError("Meal not found")
		}

		meal := &p.Meals[mealIndex]
		if !meal.IsCompleted {
			return domain.NewValidationError("Meal is not marked as completed")
		}

		for _, removed := range meal.RemovedIngredients {
			if _, err := s.pantryRepository.IncreaseQuantityByNameAndUnit(
				ctx, removed.IngredientName, removed.Unit, removed.Quantity,
			); err != nil {
				return err
			}
		}

		meal.MarkAsUncompleted()
		if err := s.mealPlanRepository.UpdateMealPlan(ctx, p); err != nil {
			return err
		}

		plan = p
		return nil
	})
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	return s.toMealPlanResponse(ctx, plan), nil
}

// mergeIngredients collapses duplicate (name, unit) entries, summing their
// quantities, so a recipe listing the same ingredient twice debits the pantry
// once. First-occurrence order is preserved.
func mergeIngredients(ingredients entities.Ingredients) entities.Ingredients {
	merged := make(entities.Ingredients, 0, len(ingredients))
	index := make(map[string]int, len(ingredients))
	for _, ingredient := range ingredients {
		key := ingredient.Name + "|" + ingredient.Unit
		if i, ok := index[key]; ok {
			merged[i].Quantity += ingredient.Quantity
			continue
		}
		index[key] = len(merged)
		merged = append(merged, ingredient)
	}
	return merged
}

func (s *mealPlanService) CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest) (domain.MealPlanResponse, error) {
	plan, err := buildMealPlan(uuid.New(), req.Name, req.StartDate, req.EndDate, req.Meals)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}

	if err := s.mealPlanRepository.CreateMealPlan(ctx, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	return s.toMealPlanResponse(ctx, plan), nil
}

func (s *mealPlanService) UpdateMealPlan(ctx context.Context, id string, req domain.UpdateMealPlanRequest) (domain.MealPlanResponse, error) {
	existing, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanResponse{}, domain.ErrMealPlanNotFound
		}
		return domain.MealPlanResponse{}, err
	}

	updated, err := buildMealPlan(existing.ID, req.Name, req.StartDate, req.EndDate, req.Meals)
	if err != nil {
		return domain.MealPlanResponse{}, err
	}
	updated.Timestamp = existing.Timestamp

	if err := s.mealPlanRepository.UpdateMealPlan(ctx, updated); err != nil {
		return domain.MealPlanResponse{}, err
	}

	return s.toMealPlanResponse(ctx, updated), nil
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, id string) error {
	if _, err := s.mealPlanRepository.GetMealPlanByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealPlanNotFound
		}
		return err
	}
	return s.mealPlanRepository.DeleteMealPlan(ctx, id)
}

func (s *mealPlanService) GetMealPlanByID(ctx context.Context, id string) (domain.MealPlanResponse, error) {
	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealPlanResponse{}, domain.ErrMealPlanNotFound
		}
		return domain.MealPlanResponse{}, err
	}
	return s.toMealPlanResponse(ctx, plan), nil
}

func (s *mealPlanService) GetMealPlans(ctx context.Context) ([]domain.MealPlanResponse, error) {
	plans, err := s.mealPlanRepository.GetMealPlans(ctx)
	if err != nil {
		return nil, err
	}
	return s.toMealPlanResponses(ctx, plans), nil
}

func (s *mealPlanService) GetActiveMealPlans(ctx context.Context) ([]domain.MealPlanResponse, error) {
	plans, err := s.mealPlanRepository.FindActiveMealPlans(ctx)
	if err != nil {
		return nil, err
	}
	return s.toMealPlanResponses(ctx, plans), nil
}

func (s *mealPlanService) GetMealPlansIncludingDate(ctx context.Context, date time.Time) ([]domain.MealPlanResponse, error) {
	plans, err := s.mealPlanRepository.FindMealPlansIncludingDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.toMealPlanResponses(ctx, plans), nil
}

func buildMealPlan(id uuid.UUID, name, startDate, endDate string, meals []domain.MealPlanItemRequest) (*entities.MealPlan, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, domain.NewValidationError(
			"Invalid meal plan data",
			domain.ValidationIssue{Field: "start_date", Message: "start date must be YYYY-MM-DD", Code: "date"},
		)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, domain.NewValidationError(
			"Invalid meal plan data",
			domain.ValidationIssue{Field: "end_date", Message: "end date must be YYYY-MM-DD", Code: "date"},
		)
	}
	if !end.After(start) {
		return nil, domain.NewValidationError(
			"Invalid meal plan data",
			domain.ValidationIssue{Field: "end_date", Message: "end date must be after start date", Code: "range"},
		)
	}

	items := make(entities.MealPlanItems, 0, len(meals))
	for _, meal := range meals {
		recipeID, err := uuid.Parse(meal.RecipeID)
		if err != nil {
			return nil, domain.NewValidationError(
				"Invalid meal plan data",
				domain.ValidationIssue{Field: "meals", Message: "recipe reference is not a valid id", Code: "uuid"},
			)
		}
		date, err := time.Parse("2006-01-02", meal.Date)
		if err != nil {
			return nil, domain.NewValidationError(
				"Invalid meal plan data",
				domain.ValidationIssue{Field: "meals", Message: "meal date must be YYYY-MM-DD", Code: "date"},
			)
		}
		if date.Before(start) || date.After(end) {
			return nil, domain.NewValidationError(
				"Invalid meal plan data",
				domain.ValidationIssue{Field: "meals", Message: "all meals must be within the meal plan date range", Code: "range"},
			)
		}
		if !entities.IsValidMealType(meal.MealType) {
			return nil, domain.NewValidationError(
				"Invalid meal plan data",
				domain.ValidationIssue{Field: "meals", Message: "unknown meal type " + meal.MealType, Code: "meal_type"},
			)
		}

		items = append(items, entities.MealPlanItem{
			RecipeID: recipeID,
			Date:     date,
			MealType: meal.MealType,
			Servings: meal.Servings,
		})
	}

	return &entities.MealPlan{
		ID:        id,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Meals:     items,
	}, nil
}

func (s *mealPlanService) toMealPlanResponse(ctx context.Context, plan *entities.MealPlan) domain.MealPlanResponse {
	meals := make([]domain.MealPlanItemResponse, 0, len(plan.Meals))
	for _, meal := range plan.Meals {
		recipeName := "Recipe not found"
		if rec, err := s.recipeRepository.GetRecipeByID(ctx, meal.RecipeID.String()); err == nil {
			recipeName = rec.Name
		}

		removed := make([]domain.RemovedIngredientResponse, 0, len(meal.RemovedIngredients))
		for _, ingredient := range meal.RemovedIngredients {
			removed = append(removed, domain.RemovedIngredientResponse{
				IngredientName: ingredient.IngredientName,
				Quantity:       ingredient.Quantity,
				Unit:           ingredient.Unit,
				PantryItemID:   ingredient.PantryItemID,
			})
		}

		meals = append(meals, domain.MealPlanItemResponse{
			RecipeID:           meal.RecipeID.String(),
			RecipeName:         recipeName,
			Date:               meal.Date,
			MealType:           meal.MealType,
			Servings:           meal.Servings,
			IsCompleted:        meal.IsCompleted,
			CompletedAt:        meal.CompletedAt,
			RemovedIngredients: removed,
		})
	}

	return domain.MealPlanResponse{
		ID:        plan.ID.String(),
		Name:      plan.Name,
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
		Meals:     meals,
		CreatedAt: plan.CreatedAt,
		UpdatedAt: plan.UpdatedAt,
	}
}

func (s *mealPlanService) toMealPlanResponses(ctx context.Context, plans []*entities.MealPlan) []domain.MealPlanResponse {
	responses := make([]domain.MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, s.toMealPlanResponse(ctx, plan))
	}
	return responses
}
