package mealplan

import (
	"context"
	"time"

	"household-backend/entities"
	"household-backend/internal/database"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error)
		UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		DeleteMealPlan(ctx context.Context, id string) error
		GetMealPlans(ctx context.Context) ([]*entities.MealPlan, error)
		FindActiveMealPlans(ctx context.Context) ([]*entities.MealPlan, error)
		FindMealPlansIncludingDate(ctx context.Context, date time.Time) ([]*entities.MealPlan, error)
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) conn(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.conn(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.conn(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.conn(ctx).Save(plan).Error
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id string) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&entities.MealPlan{}).Error
}

func (r *mealPlanRepository) GetMealPlans(ctx context.Context) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.conn(ctx).Order("start_date desc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) FindActiveMealPlans(ctx context.Context) ([]*entities.MealPlan, error) {
	return r.FindMealPlansIncludingDate(ctx, time.Now())
}

func (r *mealPlanRepository) FindMealPlansIncludingDate(ctx context.Context, date time.Time) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.conn(ctx).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Order("start_date desc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}
