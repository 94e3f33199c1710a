package pantry

import (
	"context"
	"testing"

	"household-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PantryRepositorySuite struct {
	suite.Suite
	repo *InMemoryPantryRepository
	ctx  context.Context
}

func (s *PantryRepositorySuite) SetupTest() {
	s.repo = NewInMemoryPantryRepository()
	s.ctx = context.Background()
}

func TestPantryRepositorySuite(t *testing.T) {
	suite.Run(t, new(PantryRepositorySuite))
}

func (s *PantryRepositorySuite) addItem(name string, quantity float64, unit string) *entities.PantryItem {
	item := &entities.PantryItem{
		ID:       uuid.New(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	}
	s.Require().NoError(s.repo.AddPantryItem(s.ctx, item))
	return item
}

// TestReduceQuantity verifies the debit contract: updated item on success,
// nil without mutation when stock is short, record-not-found when absent.
func (s *PantryRepositorySuite) TestReduceQuantity() {
	s.Run("debits stock and returns the updated item", func() {
		stored := s.addItem("flour", 500, "g")

		item, err := s.repo.ReduceQuantityByNameAndUnit(s.ctx, "flour", "g", 100)
		s.Require().NoError(err)
		s.Require().NotNil(item)
		s.Equal(stored.ID, item.ID)
		s.InDelta(400, item.Quantity, 1e-9)
	})

	s.Run("refuses an insufficient debit without mutating", func() {
		s.addItem("sugar", 50, "g")

		item, err := s.repo.ReduceQuantityByNameAndUnit(s.ctx, "sugar", "g", 100)
		s.Require().NoError(err)
		s.Nil(item)

		kept, err := s.repo.FindByNameAndUnit(s.ctx, "sugar", "g")
		s.Require().NoError(err)
		s.InDelta(50, kept.Quantity, 1e-9)
	})

	s.Run("reports an absent item", func() {
		_, err := s.repo.ReduceQuantityByNameAndUnit(s.ctx, "saffron", "g", 1)
		s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	})

	s.Run("requires an exact unit match", func() {
		s.addItem("milk", 2, "l")

		_, err := s.repo.ReduceQuantityByNameAndUnit(s.ctx, "milk", "ml", 100)
		s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	})
}

// TestIncreaseQuantity verifies the credit contract: false when absent, and
// the ledger never creates items on its own.
func (s *PantryRepositorySuite) TestIncreaseQuantity() {
	s.Run("credits an existing item", func() {
		s.addItem("rice", 1, "kg")

		ok, err := s.repo.IncreaseQuantityByNameAndUnit(s.ctx, "rice", "kg", 0.5)
		s.Require().NoError(err)
		s.True(ok)

		item, err := s.repo.FindByNameAndUnit(s.ctx, "rice", "kg")
		s.Require().NoError(err)
		s.InDelta(1.5, item.Quantity, 1e-9)
	})

	s.Run("returns false for an absent item and creates nothing", func() {
		ok, err := s.repo.IncreaseQuantityByNameAndUnit(s.ctx, "vanilla", "g", 10)
		s.Require().NoError(err)
		s.False(ok)

		_, err = s.repo.FindByNameAndUnit(s.ctx, "vanilla", "g")
		s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	})
}

// TestFirstMatch verifies that duplicate (name, unit) rows resolve to the
// oldest one, matching the database-backed implementation.
func (s *PantryRepositorySuite) TestFirstMatch() {
	first := s.addItem("eggs", 6, "piece")
	s.addItem("eggs", 12, "piece")

	item, err := s.repo.ReduceQuantityByNameAndUnit(s.ctx, "eggs", "piece", 2)
	s.Require().NoError(err)
	s.Require().NotNil(item)
	s.Equal(first.ID, item.ID)
	s.InDelta(4, item.Quantity, 1e-9)
}
