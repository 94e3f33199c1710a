package pantry

import (
	"context"
	"errors"
	"time"

	"household-backend/entities"
	"household-backend/internal/database"

	"gorm.io/gorm"
)

type (
	// PantryRepository owns all reads and writes of pantry stock. The two
	// quantity operations are the ledger: they are the only sanctioned way to
	// move stock, they never store a negative quantity, and they never create
	// an item implicitly. Lookups report a missing item as
	// gorm.ErrRecordNotFound.
	PantryRepository interface {
		AddPantryItem(ctx context.Context, item *entities.PantryItem) error
		GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		FindByNameAndUnit(ctx context.Context, name, unit string) (*entities.PantryItem, error)
		UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error
		DeletePantryItem(ctx context.Context, id string) error
		GetPantryItems(ctx context.Context) ([]*entities.PantryItem, error)
		SearchByName(ctx context.Context, name string) ([]*entities.PantryItem, error)
		FindByCategory(ctx context.Context, category string) ([]*entities.PantryItem, error)
		FindExpiringSoon(ctx context.Context, days int) ([]*entities.PantryItem, error)

		// ReduceQuantityByNameAndUnit debits stock for the exact (name, unit)
		// pair. It returns the updated item on success, (nil, nil) when the
		// stock is insufficient (no mutation), and gorm.ErrRecordNotFound when
		// no such item exists.
		ReduceQuantityByNameAndUnit(ctx context.Context, name, unit string, amount float64) (*entities.PantryItem, error)

		// IncreaseQuantityByNameAndUnit credits stock for the exact (name,
		// unit) pair. It returns false when no such item exists; creating the
		// missing item is the caller's decision.
		IncreaseQuantityByNameAndUnit(ctx context.Context, name, unit string, amount float64) (bool, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) conn(ctx context.Context) *gorm.DB {
	return database.FromContext(ctx, r.db).WithContext(ctx)
}

func (r *pantryRepository) AddPantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.conn(ctx).Create(item).Error
}

func (r *pantryRepository) GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.conn(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) FindByNameAndUnit(ctx context.Context, name, unit string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.conn(ctx).Where("name = ? AND unit = ?", name, unit).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.conn(ctx).Save(item).Error
}

func (r *pantryRepository) DeletePantryItem(ctx context.Context, id string) error {
	return r.conn(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

func (r *pantryRepository) GetPantryItems(ctx context.Context) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.conn(ctx).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) SearchByName(ctx context.Context, name string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.conn(ctx).
		Where("name ILIKE ?", "%"+name+"%").
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) FindByCategory(ctx context.Context, category string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.conn(ctx).
		Where("category = ?", category).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) FindExpiringSoon(ctx context.Context, days int) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	threshold := time.Now().AddDate(0, 0, days)
	if err := r.conn(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date <= ?", threshold).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) ReduceQuantityByNameAndUnit(ctx context.Context, name, unit string, amount float64) (*entities.PantryItem, error) {
	item, err := r.FindByNameAndUnit(ctx, name, unit)
	if err != nil {
		return nil, err
	}
	if !item.ReduceQuantity(amount) {
		return nil, nil
	}
	if err := r.UpdatePantryItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *pantryRepository) IncreaseQuantityByNameAndUnit(ctx context.Context, name, unit string, amount float64) (bool, error) {
	item, err := r.FindByNameAndUnit(ctx, name, unit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	item.IncreaseQuantity(amount)
	if err := r.UpdatePantryItem(ctx, item); err != nil {
		return false, err
	}
	return true, nil
}
