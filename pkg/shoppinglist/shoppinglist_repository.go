package shoppinglist

import (
	"context"

	"household-backend/entities"
	"household-backend/internal/database"

	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		CreateShoppingList(ctx context.Context, list *entities.ShoppingList) error
		GetShoppingListByID(ctx context.Context, id string) (*entities.ShoppingList, error)
		UpdateShoppingList(ctx context.Context, list *entities.ShoppingList) error
		DeleteShoppingList(ctx context.Context, id string) error
		GetShoppingLists(ctx context.Context) ([]*entities.ShoppingList, error)
		FindByMealPlan(ctx context.Context, mealPlanID string) ([]*entities.ShoppingList, error)
		FindCompleted(ctx context.Context) ([]*entities.ShoppingList, error)
		FindPending(ctx context.Context) ([]*entities.ShoppingList, error)
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) conn(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *shoppingListRepository) CreateShoppingList(ctx context.Context, list *entities.ShoppingList) error {
	return r.conn(ctx).Create(list).Error
}

func (r *shoppingListRepository) GetShoppingListByID(ctx context.Context, id string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.conn(ctx).First(&list, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingListRepository) UpdateShoppingList(ctx context.Context, list *entities.ShoppingList) error {
	return r.conn(ctx).Save(list).Error
}

func (r *shoppingListRepository) DeleteShoppingList(ctx context.Context, id string) error {
	return r.conn(ctx).Delete(&entities.ShoppingList{}, "id = ?", id).Error
}

func (r *shoppingListRepository) GetShoppingLists(ctx context.Context) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.conn(ctx).Order("created_at desc").Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingListRepository) FindByMealPlan(ctx context.Context, mealPlanID string) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.conn(ctx).
		Where("meal_plan_id = ?", mealPlanID).
		Order("created_at desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingListRepository) FindCompleted(ctx context.Context) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.conn(ctx).
		Where("is_completed = ?", true).
		Order("created_at desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingListRepository) FindPending(ctx context.Context) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.conn(ctx).
		Where("is_completed = ?", false).
		Order("created_at desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}
