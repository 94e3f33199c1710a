package shoppinglist

import (
	"context"
	"sort"
	"sync"
	"time"

	"household-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InMemoryShoppingListRepository is a map-backed ShoppingListRepository used
// by tests and local runs without a database.
type InMemoryShoppingListRepository struct {
	mu    sync.RWMutex
	lists map[uuid.UUID]*entities.ShoppingList
}

func NewInMemoryShoppingListRepository() *InMemoryShoppingListRepository {
	return &InMemoryShoppingListRepository{lists: make(map[uuid.UUID]*entities.ShoppingList)}
}

func (r *InMemoryShoppingListRepository) CreateShoppingList(_ context.Context, list *entities.ShoppingList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if list.ID == uuid.Nil {
		list.ID = uuid.New()
	}
	now := time.Now()
	list.CreatedAt = now
	list.UpdatedAt = now
	r.lists[list.ID] = copyList(list)
	return nil
}

func (r *InMemoryShoppingListRepository) GetShoppingListByID(_ context.Context, id string) (*entities.ShoppingList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	list, ok := r.lists[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return copyList(list), nil
}

func (r *InMemoryShoppingListRepository) UpdateShoppingList(_ context.Context, list *entities.ShoppingList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.lists[list.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	list.CreatedAt = existing.CreatedAt
	list.UpdatedAt = time.Now()
	r.lists[list.ID] = copyList(list)
	return nil
}

func (r *InMemoryShoppingListRepository) DeleteShoppingList(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	delete(r.lists, parsed)
	return nil
}

func (r *InMemoryShoppingListRepository) GetShoppingLists(_ context.Context) ([]*entities.ShoppingList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(*entities.ShoppingList) bool { return true }), nil
}

func (r *InMemoryShoppingListRepository) FindByMealPlan(_ context.Context, mealPlanID string) ([]*entities.ShoppingList, error) {
	parsed, err := uuid.Parse(mealPlanID)
	if err != nil {
		return nil, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(list *entities.ShoppingList) bool {
		return list.MealPlanID != nil && *list.MealPlanID == parsed
	}), nil
}

func (r *InMemoryShoppingListRepository) FindCompleted(_ context.Context) ([]*entities.ShoppingList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(list *entities.ShoppingList) bool { return list.IsCompleted }), nil
}

func (r *InMemoryShoppingListRepository) FindPending(_ context.Context) ([]*entities.ShoppingList, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(list *entities.ShoppingList) bool { return !list.IsCompleted }), nil
}

func (r *InMemoryShoppingListRepository) filterLocked(keep func(*entities.ShoppingList) bool) []*entities.ShoppingList {
	lists := make([]*entities.ShoppingList, 0, len(r.lists))
	for _, list := range r.lists {
		if keep(list) {
			lists = append(lists, copyList(list))
		}
	}
	sort.SliceStable(lists, func(i, j int) bool {
		return lists[i].CreatedAt.After(lists[j].CreatedAt)
	})
	return lists
}

func copyList(list *entities.ShoppingList) *entities.ShoppingList {
	copied := *list
	copied.Items = make(entities.ShoppingListItems, len(list.Items))
	copy(copied.Items, list.Items)
	return &copied
}
