package pantry

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"household-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InMemoryPantryRepository keeps pantry stock in a map guarded by a mutex.
// Lookups scan in insertion order so "first match" behaves the same as the
// database-backed implementation. It reports missing items with
// gorm.ErrRecordNotFound to honor the repository contract.
type InMemoryPantryRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*entities.PantryItem
	order []uuid.UUID
}

func NewInMemoryPantryRepository() *InMemoryPantryRepository {
	return &InMemoryPantryRepository{items: make(map[uuid.UUID]*entities.PantryItem)}
}

func (r *InMemoryPantryRepository) AddPantryItem(_ context.Context, item *entities.PantryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	stored := *item
	r.items[item.ID] = &stored
	r.order = append(r.order, item.ID)
	return nil
}

func (r *InMemoryPantryRepository) GetPantryItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	item, ok := r.items[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *InMemoryPantryRepository) FindByNameAndUnit(_ context.Context, name, unit string) (*entities.PantryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item := r.findLocked(name, unit)
	if item == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *InMemoryPantryRepository) UpdatePantryItem(_ context.Context, item *entities.PantryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[item.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	stored := *item
	r.items[item.ID] = &stored
	return nil
}

func (r *InMemoryPantryRepository) DeletePantryItem(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	delete(r.items, parsed)
	for i, stored := range r.order {
		if stored == parsed {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryPantryRepository) GetPantryItems(_ context.Context) ([]*entities.PantryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.allLocked()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *InMemoryPantryRepository) SearchByName(_ context.Context, name string) ([]*entities.PantryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(name)
	var items []*entities.PantryItem
	for _, item := range r.allLocked() {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *InMemoryPantryRepository) FindByCategory(_ context.Context, category string) ([]*entities.PantryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []*entities.PantryItem
	for _, item := range r.allLocked() {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *InMemoryPantryRepository) FindExpiringSoon(_ context.Context, days int) ([]*entities.PantryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	threshold := time.Now().AddDate(0, 0, days)
	var items []*entities.PantryItem
	for _, item := range r.allLocked() {
		if item.ExpiryDate != nil && !item.ExpiryDate.After(threshold) {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ExpiryDate.Before(*items[j].ExpiryDate)
	})
	return items, nil
}

func (r *InMemoryPantryRepository) ReduceQuantityByNameAndUnit(_ context.Context, name, unit string, amount float64) (*entities.PantryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := r.findLocked(name, unit)
	if item == nil {
		return nil, gorm.ErrRecordNotFound
	}
	if !item.ReduceQuantity(amount) {
		return nil, nil
	}
	item.UpdatedAt = time.Now()
	copied := *item
	return &copied, nil
}

func (r *InMemoryPantryRepository) IncreaseQuantityByNameAndUnit(_ context.Context, name, unit string, amount float64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := r.findLocked(name, unit)
	if item == nil {
		return false, nil
	}
	item.IncreaseQuantity(amount)
	item.UpdatedAt = time.Now()
	return true, nil
}

func (r *InMemoryPantryRepository) findLocked(name, unit string) *entities.PantryItem {
	for _, id := range r.order {
		item := r.items[id]
		if item.Name == name && item.Unit == unit {
			return item
		}
	}
	return nil
}

func (r *InMemoryPantryRepository) allLocked() []*entities.PantryItem {
	items := make([]*entities.PantryItem, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.items[id]
		items = append(items, &copied)
	}
	return items
}
