package mealplan

import (
	"context"
	"sort"
	"sync"
	"time"

	"household-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InMemoryMealPlanRepository is a map-backed MealPlanRepository used by tests
// and local runs without a database. Plans are deep-copied on the way in and
// out so callers never share meal slices with the store.
type InMemoryMealPlanRepository struct {
	mu    sync.RWMutex
	plans map[uuid.UUID]*entities.MealPlan
}

func NewInMemoryMealPlanRepository() *InMemoryMealPlanRepository {
	return &InMemoryMealPlanRepository{plans: make(map[uuid.UUID]*entities.MealPlan)}
}

func (r *InMemoryMealPlanRepository) CreateMealPlan(_ context.Context, plan *entities.MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	r.plans[plan.ID] = copyPlan(plan)
	return nil
}

func (r *InMemoryMealPlanRepository) GetMealPlanByID(_ context.Context, id string) (*entities.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	plan, ok := r.plans[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return copyPlan(plan), nil
}

func (r *InMemoryMealPlanRepository) UpdateMealPlan(_ context.Context, plan *entities.MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.plans[plan.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	plan.CreatedAt = existing.CreatedAt
	plan.UpdatedAt = time.Now()
	r.plans[plan.ID] = copyPlan(plan)
	return nil
}

func (r *InMemoryMealPlanRepository) DeleteMealPlan(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}
	delete(r.plans, parsed)
	return nil
}

func (r *InMemoryMealPlanRepository) GetMealPlans(_ context.Context) ([]*entities.MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plans := make([]*entities.MealPlan, 0, len(r.plans))
	for _, plan := range r.plans {
		plans = append(plans, copyPlan(plan))
	}
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].StartDate.After(plans[j].StartDate)
	})
	return plans, nil
}

func (r *InMemoryMealPlanRepository) FindActiveMealPlans(ctx context.Context) ([]*entities.MealPlan, error) {
	return r.FindMealPlansIncludingDate(ctx, time.Now())
}

func (r *InMemoryMealPlanRepository) FindMealPlansIncludingDate(ctx context.Context, date time.Time) ([]*entities.MealPlan, error) {
	all, err := r.GetMealPlans(ctx)
	if err != nil {
		return nil, err
	}
	var plans []*entities.MealPlan
	for _, plan := range all {
		if !plan.StartDate.After(date) && !plan.EndDate.Before(date) {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

func copyPlan(plan *entities.MealPlan) *entities.MealPlan {
	copied := *plan
	copied.Meals = make(entities.MealPlanItems, len(plan.Meals))
	copy(copied.Meals, plan.Meals)
	for i, meal := range plan.Meals {
		if len(meal.RemovedIngredients) > 0 {
			removed := make([]entities.RemovedIngredient, len(meal.RemovedIngredients))
			copy(removed, meal.RemovedIngredients)
			copied.Meals[i].RemovedIngredients = removed
		}
	}
	return &copied
}
