package shoppinglist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"household-backend/domain"
	"household-backend/entities"
	"household-backend/internal/database"
	"household-backend/pkg/mealplan"
	"household-backend/pkg/pantry"
	"household-backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ShoppingListService interface {
		CreateShoppingList(ctx context.Context, req domain.CreateShoppingListRequest) (domain.ShoppingListResponse, error)
		CreateFromMealPlan(ctx context.Context, req domain.GenerateShoppingListRequest) (domain.ShoppingListResponse, error)
		UpdateShoppingList(ctx context.Context, id string, req domain.UpdateShoppingListRequest) (domain.ShoppingListResponse, error)
		DeleteShoppingList(ctx context.Context, id string) error
		GetShoppingListByID(ctx context.Context, id string) (domain.ShoppingListResponse, error)
		GetShoppingLists(ctx context.Context) ([]domain.ShoppingListResponse, error)
		GetShoppingListsByMealPlan(ctx context.Context, mealPlanID string) ([]domain.ShoppingListResponse, error)
		GetCompletedShoppingLists(ctx context.Context) ([]domain.ShoppingListResponse, error)
		GetPendingShoppingLists(ctx context.Context) ([]domain.ShoppingListResponse, error)

		ToggleItemPurchased(ctx context.Context, listID string, itemIndex int) (domain.ShoppingListResponse, error)
		ToggleItemPurchasedByID(ctx context.Context, listID, itemID string, purchased, autoAddToPantry bool) (domain.ShoppingListResponse, error)
		RemoveItemByID(ctx context.Context, listID, itemID string) (domain.ShoppingListResponse, error)
		AddItem(ctx context.Context, listID string, data domain.AddShoppingItemData) (domain.ShoppingListResponse, error)
		TransferItemsToPantry(ctx context.Context, listID string, itemIDs []string) (domain.ShoppingListResponse, error)
		CompleteShoppingList(ctx context.Context, listID string, addToPantry bool) (domain.ShoppingListResponse, error)
	}

	shoppingListService struct {
		shoppingListRepository ShoppingListRepository
		mealPlanRepository     mealplan.MealPlanRepository
		recipeRepository       recipe.RecipeRepository
		pantryRepository       pantry.PantryRepository
		tx                     database.TxManager
	}
)

func NewShoppingListService(
	shoppingListRepository ShoppingListRepository,
	mealPlanRepository mealplan.MealPlanRepository,
	recipeRepository recipe.RecipeRepository,
	pantryRepository pantry.PantryRepository,
	tx database.TxManager,
) ShoppingListService {
	return &shoppingListService{
		shoppingListRepository: shoppingListRepository,
		mealPlanRepository:     mealPlanRepository,
		recipeRepository:       recipeRepository,
		pantryRepository:       pantryRepository,
		tx:                     tx,
	}
}

func (s *shoppingListService) CreateShoppingList(ctx context.Context, req domain.CreateShoppingListRequest) (domain.ShoppingListResponse, error) {
	items := toShoppingListItems(req.Items)
	if err := validateShoppingListItems(items); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	list := &entities.ShoppingList{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Items:       items,
	}

	if err := s.shoppingListRepository.CreateShoppingList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return toShoppingListResponse(list), nil
}

// CreateFromMealPlan derives a shopping list from a meal plan. Every meal
// contributes its recipe's ingredients scaled by servings; meals whose recipe
// no longer exists are skipped. Lines are aggregated by exact (name, unit):
// the first occurrence keeps its category and provenance, later occurrences
// only add quantity.
func (s *shoppingListService) CreateFromMealPlan(ctx context.Context, req domain.GenerateShoppingListRequest) (domain.ShoppingListResponse, error) {
	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, req.MealPlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShoppingListResponse{}, domain.NewValidationError("Meal plan not found")
		}
		return domain.ShoppingListResponse{}, err
	}

	items := make(entities.ShoppingListItems, 0)
	index := make(map[string]int)

	for _, meal := range plan.Meals {
		rec, err := s.recipeRepository.GetRecipeByID(ctx, meal.RecipeID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return domain.ShoppingListResponse{}, err
		}

		for _, ingredient := range rec.Ingredients {
			required := ingredient.Quantity * float64(meal.Servings) / float64(rec.Servings)
			key := ingredient.Name + "|" + ingredient.Unit

			if i, ok := index[key]; ok {
				items[i].Quantity += required
				continue
			}

			recipeID := meal.RecipeID
			index[key] = len(items)
			items = append(items, entities.ShoppingListItem{
				Name:                   ingredient.Name,
				Quantity:               required,
				Unit:                   ingredient.Unit,
				Category:               ingredient.Category,
				RecipeID:               &recipeID,
				OriginalIngredientName: ingredient.Name,
			})
		}
	}

	name := req.Name
	if name == "" {
		name = "Shopping List for " + plan.Name
	}

	if err := validateShoppingListItems(items); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	mealPlanID := plan.ID
	list := &entities.ShoppingList{
		ID:          uuid.New(),
		Name:        name,
		Description: "Generated from meal plan: " + plan.Name,
		MealPlanID:  &mealPlanID,
		Items:       items,
	}

	if err := s.shoppingListRepository.CreateShoppingList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return toShoppingListResponse(list), nil
}

func (s *shoppingListService) UpdateShoppingList(ctx context.Context, id string, req domain.UpdateShoppingListRequest) (domain.ShoppingListResponse, error) {
	list, err := s.getList(ctx, id)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	items := toShoppingListItems(req.Items)
	if err := validateShoppingListItems(items); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	list.Name = req.Name
	list.Description = req.Description
	list.Items = items

	if err := s.shoppingListRepository.UpdateShoppingList(ctx, list); err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return toShoppingListResponse(list), nil
}

func (s *shoppingListService) DeleteShoppingList(ctx context.Context, id string) error {
	if _, err := s.getList(ctx, id); err != nil {
		return err
	}
	return s.shoppingListRepository.DeleteShoppingList(ctx, id)
}

func (s *shoppingListService) GetShoppingListByID(ctx context.Context, id string) (domain.ShoppingListResponse, error) {
	list, err := s.getList(ctx, id)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	return toShoppingListResponse(list), nil
}

func (s *shoppingListService) GetShoppingLists(ctx context.Context) ([]domain.ShoppingListResponse, error) {
	lists, err := s.shoppingListRepository.GetShoppingLists(ctx)
	if err != nil {
		return nil, err
	}
	return toShoppingListResponses(lists), nil
}

func (s *shoppingListService) GetShoppingListsByMealPlan(ctx context.Context, mealPlanID string) ([]domain.ShoppingListResponse, error) {
	lists, err := s.shoppingListRepository.FindByMealPlan(ctx, mealPlanID)
	if err != nil {
		return nil, err
	}
	return toShoppingListResponses(lists), nil
}

func (s *shoppingListService) GetCompletedShoppingLists(ctx context.Context) ([]domain.ShoppingListResponse, error) {
	lists, err := s.shoppingListRepository.FindCompleted(ctx)
	if err != nil {
		return nil, err
	}
	return toShoppingListResponses(lists), nil
}

func (s *shoppingListService) GetPendingShoppingLists(ctx context.Context) ([]domain.ShoppingListResponse, error) {
	lists, err := s.shoppingListRepository.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return toShoppingListResponses(lists), nil
}

// ToggleItemPurchased is the index-addressed toggle kept for older clients.
// It flips the item and then reconciles whole-list completion in both
// directions: all items purchased completes the list, any unpurchased item
// reopens a completed one.
func (s *shoppingListService) ToggleItemPurchased(ctx context.Context, listID string, itemIndex int) (domain.ShoppingListResponse, error) {
	var list *entities.ShoppingList

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.getList(ctx, listID)
		if err != nil {
			return err
		}

		if itemIndex < 0 || itemIndex >= len(l.Items) {
			return domain.NewValidationError("Invalid item index")
		}

		l.Items[itemIndex].IsPurchased = !l.Items[itemIndex].IsPurchased

		if l.AreAllItemsPurchased() && !l.IsCompleted {
			l.MarkAsCompleted()
		} else if !l.AreAllItemsPurchased() && l.IsCompleted {
			l.MarkAsUncompleted()
		}

		if err := s.shoppingListRepository.UpdateShoppingList(ctx, l); err != nil {
			return err
		}

		list = l
		return nil
	})
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return toShoppingListResponse(list), nil
}

// ToggleItemPurchasedByID sets the purchased state of the first item whose
// derived id matches. Purchasing with autoAddToPantry moves the quantity into
// the pantry, creating the pantry item when it does not exist yet. Unlike the
// index path, no whole-list completion sync happens here.
func (s *shoppingListService) ToggleItemPurchasedByID(ctx context.Context, listID, itemID string, purchased, autoAddToPantry bool) (domain.ShoppingListResponse, error) {
	var list *entities.ShoppingList

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.getList(ctx, listID)
		if err != nil {
			return err
		}

		i := findItemIndexByID(l.Items, itemID)
		if i < 0 {
			return domain.NewValidationError("Item not found in shopping list")
		}

		l.Items[i].IsPurchased = purchased

		if purchased && autoAddToPantry {
			if err := s.addItemToPantry(ctx, l.Items[i]); err != nil {
				return err
			}
		}

		if err := s.shoppingListRepository.UpdateShoppingList(ctx, l); err != nil {
			return err
		}

		list = l
		return nil
	})
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return toShoppingListResponse(list), nil
}

func (s *shoppingListService) RemoveItemByID(ctx context.Context, listID, itemID string) (domain.ShoppingListResponse, error) {
	var list *entities.ShoppingList

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.getList(ctx, listID)
		if err != nil {
			return err
		}

		i := findItemIndexByID(l.Items, itemID)
		if i < 0 {
			return domain.NewValidationError("Item not found in shopping list")
		}

		l.Items = append(l.Items[:i], l.Items[i+1:]...)

		if err := s.shoppingListRepository.UpdateShoppingList(ctx, l); err != nil {
			return err
		}

		list = l
		return nil
	})
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return toShoppingListResponse(list), nil
}

// AddItem appends a new unpurchased, not-in-pantry item.
func (s *shoppingListService) AddItem(ctx context.Context, listID string, data domain.AddShoppingItemData) (domain.ShoppingListResponse, error) {
	var issues []domain.ValidationIssue
	if strings.TrimSpace(data.Ingredient) == "" {
		issues = append(issues, domain.ValidationIssue{Field: "item.ingredient", Message: "ingredient is required", Code: "required"})
	}
	if data.Quantity <= 0 {
		issues = append(issues, domain.ValidationIssue{Field: "item.quantity", Message: "quantity must be positive", Code: "gt"})
	}
	if strings.TrimSpace(data.Unit) == "" {
		issues = append(issues, domain.ValidationIssue{Field: "item.unit", Message: "unit is required", Code: "required"})
	}
	if len(issues) > 0 {
		return domain.ShoppingListResponse{}, domain.NewValidationError("Invalid shopping list item", issues...)
	}

	var list *entities.ShoppingList

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.getList(ctx, listID)
		if err != nil {
			return err
		}

		l.Items = append(l.Items, entities.ShoppingListItem{
			Name:     data.Ingredient,
			Quantity: data.Quantity,
			Unit:     data.Unit,
			Category: data.Category,
			Notes:    data.Notes,
		})

		if err := s.shoppingListRepository.UpdateShoppingList(ctx, l); err != nil {
			return err
		}

		list = l
		return nil
	})
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return toShoppingListResponse(list), nil
}

// TransferItemsToPantry moves shopping list lines into the pantry. With
// explicit itemIDs only the matching items are transferred and each is marked
// purchased; without, every currently purchased item is transferred. Items are
// processed in list order either way.
func (s *shoppingListService) TransferItemsToPantry(ctx context.Context, listID string, itemIDs []string) (domain.ShoppingListResponse, error) {
	var list *entities.ShoppingList

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.getList(ctx, listID)
		if err != nil {
			return err
		}

		selected := make(map[string]bool, len(itemIDs))
		for _, id := range itemIDs {
			selected[id] = true
		}

		for i := range l.Items {
			transfer := l.Items[i].IsPurchased
			if len(itemIDs) > 0 {
				transfer = selected[deriveItemID(l.Items[i])]
			}
			if !transfer {
				continue
			}

			if err := s.addItemToPantry(ctx, l.Items[i]); err != nil {
				return err
			}
			if len(itemIDs) > 0 {
				l.Items[i].IsPurchased = true
			}
		}

		if err := s.shoppingListRepository.UpdateShoppingList(ctx, l); err != nil {
			return err
		}

		list = l
		return nil
	})
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return toShoppingListResponse(list), nil
}

// CompleteShoppingList marks the list completed, which marks every item
// purchased. With addToPantry each purchased line is then moved into the
// pantry through the same increase-or-create path as a transfer.
func (s *shoppingListService) CompleteShoppingList(ctx context.Context, listID string, addToPantry bool) (domain.ShoppingListResponse, error) {
	var list *entities.ShoppingList

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.getList(ctx, listID)
		if err != nil {
			return err
		}

		if l.IsCompleted {
			return domain.NewValidationError("Shopping list is already completed")
		}

		l.MarkAsCompleted()

		if addToPantry {
			for i := range l.Items {
				if !l.Items[i].IsPurchased {
					continue
				}
				if err := s.addItemToPantry(ctx, l.Items[i]); err != nil {
					return err
				}
			}
		}

		if err := s.shoppingListRepository.UpdateShoppingList(ctx, l); err != nil {
			return err
		}

		list = l
		return nil
	})
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	return toShoppingListResponse(list), nil
}

// addItemToPantry credits an existing pantry item or creates one when no
// (name, unit) match exists. A creation failure is logged and swallowed so one
// bad line never aborts the rest of a transfer or completion.
func (s *shoppingListService) addItemToPantry(ctx context.Context, item entities.ShoppingListItem) error {
	increased, err := s.pantryRepository.IncreaseQuantityByNameAndUnit(ctx, item.Name, item.Unit, item.Quantity)
	if err != nil {
		return err
	}
	if increased {
		return nil
	}

	pantryItem := &entities.PantryItem{
		ID:       uuid.New(),
		Name:     item.Name,
		Quantity: item.Quantity,
		Unit:     item.Unit,
		Category: item.Category,
	}
	if err := s.pantryRepository.AddPantryItem(ctx, pantryItem); err != nil {
		log.Printf("failed to add %q to pantry: %v", item.Name, err)
	}
	return nil
}

func (s *shoppingListService) getList(ctx context.Context, id string) (*entities.ShoppingList, error) {
	list, err := s.shoppingListRepository.GetShoppingListByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingListNotFound
		}
		return nil, err
	}
	return list, nil
}

// validateShoppingListItems is the single check every persisted item set goes
// through, whether the items came from a client payload or a generator.
func validateShoppingListItems(items entities.ShoppingListItems) error {
	var issues []domain.ValidationIssue
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			issues = append(issues, domain.ValidationIssue{
				Field:   fmt.Sprintf("items[%d].name", i),
				Message: "name is required",
				Code:    "required",
			})
		}
		if item.Quantity <= 0 {
			issues = append(issues, domain.ValidationIssue{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "quantity must be positive",
				Code:    "gt",
			})
		}
		if strings.TrimSpace(item.Unit) == "" {
			issues = append(issues, domain.ValidationIssue{
				Field:   fmt.Sprintf("items[%d].unit", i),
				Message: "unit is required",
				Code:    "required",
			})
		}
	}
	if len(issues) > 0 {
		return domain.NewValidationError("Invalid shopping list item", issues...)
	}
	return nil
}

func toShoppingListItems(requests []domain.ShoppingListItemRequest) entities.ShoppingListItems {
	items := make(entities.ShoppingListItems, 0, len(requests))
	for _, req := range requests {
		var recipeID *uuid.UUID
		if id, err := uuid.Parse(req.RecipeID); err == nil {
			recipeID = &id
		}
		items = append(items, entities.ShoppingListItem{
			Name:                   req.Name,
			Quantity:               req.Quantity,
			Unit:                   req.Unit,
			Category:               req.Category,
			IsPurchased:            req.IsPurchased,
			InPantry:               req.InPantry,
			Notes:                  req.Notes,
			RecipeID:               recipeID,
			OriginalIngredientName: req.OriginalIngredientName,
		})
	}
	return items
}

func toShoppingListResponse(list *entities.ShoppingList) domain.ShoppingListResponse {
	items := make([]domain.ShoppingListItemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		recipeID := ""
		if item.RecipeID != nil {
			recipeID = item.RecipeID.String()
		}
		items = append(items, domain.ShoppingListItemResponse{
			ID:                     deriveItemID(item),
			Name:                   item.Name,
			Quantity:               item.Quantity,
			Unit:                   item.Unit,
			Category:               item.Category,
			IsPurchased:            item.IsPurchased,
			InPantry:               item.InPantry,
			Notes:                  item.Notes,
			RecipeID:               recipeID,
			OriginalIngredientName: item.OriginalIngredientName,
		})
	}

	mealPlanID := ""
	if list.MealPlanID != nil {
		mealPlanID = list.MealPlanID.String()
	}

	return domain.ShoppingListResponse{
		ID:          list.ID.String(),
		Name:        list.Name,
		Description: list.Description,
		MealPlanID:  mealPlanID,
		Items:       items,
		IsCompleted: list.IsCompleted,
		CompletedAt: list.CompletedAt,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}

func toShoppingListResponses(lists []*entities.ShoppingList) []domain.ShoppingListResponse {
	responses := make([]domain.ShoppingListResponse, 0, len(lists))
	for _, list := range lists {
		responses = append(responses, toShoppingListResponse(list))
	}
	return responses
}
