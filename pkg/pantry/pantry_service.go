package pantry

import (
	"context"
	"errors"
	"time"

	"household-backend/domain"
	"household-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PantryService interface {
		AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest) (domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest) (domain.PantryItemResponse, error)
		DeletePantryItem(ctx context.Context, id string) error
		GetPantryItemByID(ctx context.Context, id string) (domain.PantryItemResponse, error)
		GetPantryItems(ctx context.Context) ([]domain.PantryItemResponse, error)
		SearchPantryItems(ctx context.Context, name string) ([]domain.PantryItemResponse, error)
		GetPantryItemsByCategory(ctx context.Context, category string) ([]domain.PantryItemResponse, error)
		GetItemsExpiringSoon(ctx context.Context, days int) ([]domain.PantryItemResponse, error)
	}

	pantryService struct {
		pantryRepository PantryRepository
	}
)

func NewPantryService(pantryRepository PantryRepository) PantryService {
	return &pantryService{pantryRepository: pantryRepository}
}

func (s *pantryService) AddPantryItem(ctx context.Context, req domain.AddPantryItemRequest) (domain.PantryItemResponse, error) {
	if !domain.IsValidUnit(req.Unit) {
		return domain.PantryItemResponse{}, domain.NewValidationError(
			"Invalid pantry item data",
			domain.ValidationIssue{Field: "unit", Message: "unknown measurement unit", Code: "unit"},
		)
	}

	item := &entities.PantryItem{
		ID:       uuid.New(),
		Name:     req.Name,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Category: req.Category,
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.NewValidationError(
				"Invalid pantry item data",
				domain.ValidationIssue{Field: "expiry_date", Message: "expiry date must be YYYY-MM-DD", Code: "date"},
			)
		}
		item.ExpiryDate = &expiryDate
	}

	if err := s.pantryRepository.AddPantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return toPantryItemResponse(item), nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest) (domain.PantryItemResponse, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.Unit != "" {
		if !domain.IsValidUnit(req.Unit) {
			return domain.PantryItemResponse{}, domain.NewValidationError(
				"Invalid pantry item data",
				domain.ValidationIssue{Field: "unit", Message: "unknown measurement unit", Code: "unit"},
			)
		}
		item.Unit = req.Unit
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.NewValidationError(
				"Invalid pantry item data",
				domain.ValidationIssue{Field: "expiry_date", Message: "expiry date must be YYYY-MM-DD", Code: "date"},
			)
		}
		item.ExpiryDate = &expiryDate
	}

	if err := s.pantryRepository.UpdatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return toPantryItemResponse(item), nil
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string) error {
	if _, err := s.pantryRepository.GetPantryItemByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPantryItemNotFound
		}
		return err
	}
	return s.pantryRepository.DeletePantryItem(ctx, id)
}

func (s *pantryService) GetPantryItemByID(ctx context.Context, id string) (domain.PantryItemResponse, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrPantryItemNotFound
		}
		return domain.PantryItemResponse{}, err
	}
	return toPantryItemResponse(item), nil
}

func (s *pantryService) GetPantryItems(ctx context.Context) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetPantryItems(ctx)
	if err != nil {
		return nil, err
	}
	return toPantryItemResponses(items), nil
}

func (s *pantryService) SearchPantryItems(ctx context.Context, name string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return toPantryItemResponses(items), nil
}

func (s *pantryService) GetPantryItemsByCategory(ctx context.Context, category string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toPantryItemResponses(items), nil
}

func (s *pantryService) GetItemsExpiringSoon(ctx context.Context, days int) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.FindExpiringSoon(ctx, days)
	if err != nil {
		return nil, err
	}
	return toPantryItemResponses(items), nil
}

func toPantryItemResponse(item *entities.PantryItem) domain.PantryItemResponse {
	return domain.PantryItemResponse{
		ID:         item.ID.String(),
		Name:       item.Name,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		Category:   item.Category,
		ExpiryDate: item.ExpiryDate,
		CreatedAt:  item.CreatedAt,
		UpdatedAt:  item.UpdatedAt,
	}
}

func toPantryItemResponses(items []*entities.PantryItem) []domain.PantryItemResponse {
	responses := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toPantryItemResponse(item))
	}
	return responses
}
