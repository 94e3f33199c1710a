package handlers

import (
	"household-backend/domain"
	"household-backend/internal/api/presenters"
	"household-backend/pkg/shoppinglist"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		CreateShoppingList(c *fiber.Ctx) error
		CreateFromMealPlan(c *fiber.Ctx) error
		UpdateShoppingList(c *fiber.Ctx) error
		PatchShoppingList(c *fiber.Ctx) error
		DeleteShoppingList(c *fiber.Ctx) error
		GetShoppingLists(c *fiber.Ctx) error
		GetShoppingListDetails(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingListService shoppinglist.ShoppingListService
		validator           *validator.Validate
	}
)

func NewShoppingListHandler(shoppingListService shoppinglist.ShoppingListService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingListService: shoppingListService,
		validator:           validator,
	}
}

func (h *shoppingListHandler) CreateShoppingList(c *fiber.Ctx) error {
	req := new(domain.CreateShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.NewBodyParseError(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveShoppingList, err)
	}

	res, err := h.shoppingListService.CreateShoppingList(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveShoppingList)
}

func (h *shoppingListHandler) CreateFromMealPlan(c *fiber.Ctx) error {
	req := new(domain.GenerateShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.NewBodyParseError(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateShoppingList, err)
	}

	res, err := h.shoppingListService.CreateFromMealPlan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateShoppingList)
}

func (h *shoppingListHandler) UpdateShoppingList(c *fiber.Ctx) error {
	listID := c.Params("id")
	req := new(domain.UpdateShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.NewBodyParseError(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingList, err)
	}

	res, err := h.shoppingListService.UpdateShoppingList(c.Context(), listID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateShoppingList)
}

// PatchShoppingList dispatches one reconciliation operation against a list.
// Named operations take priority; the item_index and is_completed forms are
// kept for older clients.
func (h *shoppingListHandler) PatchShoppingList(c *fiber.Ctx) error {
	listID := c.Params("id")
	req := new(domain.PatchShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.NewBodyParseError(err))
	}

	var (
		res domain.ShoppingListResponse
		err error
	)
	switch {
	case req.Operation == domain.ShoppingListOpTogglePurchased:
		purchased := true
		if req.Purchased != nil {
			purchased = *req.Purchased
		}
		autoAdd := req.AutoAddToPantry != nil && *req.AutoAddToPantry
		res, err = h.shoppingListService.ToggleItemPurchasedByID(c.Context(), listID, req.ItemID, purchased, autoAdd)

	case req.Operation == domain.ShoppingListOpRemoveItem:
		res, err = h.shoppingListService.RemoveItemByID(c.Context(), listID, req.ItemID)

	case req.Operation == domain.ShoppingListOpTransferToPantry:
		res, err = h.shoppingListService.TransferItemsToPantry(c.Context(), listID, req.ItemIDs)

	case req.Operation == domain.ShoppingListOpAddItem:
		if req.Item == nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPatchShoppingList,
				domain.NewValidationError("Invalid item data - ingredient, quantity, and unit are required"))
		}
		res, err = h.shoppingListService.AddItem(c.Context(), listID, *req.Item)

	case req.ItemIndex != nil:
		res, err = h.shoppingListService.ToggleItemPurchased(c.Context(), listID, *req.ItemIndex)

	case req.IsCompleted != nil && *req.IsCompleted:
		addToPantry := req.AddToPantry == nil || *req.AddToPantry
		res, err = h.shoppingListService.CompleteShoppingList(c.Context(), listID, addToPantry)

	default:
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPatchShoppingList,
			domain.NewValidationError("Invalid patch request - operation is required"))
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPatchShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessPatchShoppingList)
}

func (h *shoppingListHandler) DeleteShoppingList(c *fiber.Ctx) error {
	listID := c.Params("id")

	if err := h.shoppingListService.DeleteShoppingList(c.Context(), listID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteShoppingList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingList)
}

func (h *shoppingListHandler) GetShoppingLists(c *fiber.Ctx) error {
	var (
		lists []domain.ShoppingListResponse
		err   error
	)
	switch {
	case c.Query("meal_plan_id") != "":
		lists, err = h.shoppingListService.GetShoppingListsByMealPlan(c.Context(), c.Query("meal_plan_id"))
	case c.Query("status") == "completed":
		lists, err = h.shoppingListService.GetCompletedShoppingLists(c.Context())
	case c.Query("status") == "pending":
		lists, err = h.shoppingListService.GetPendingShoppingLists(c.Context())
	default:
		lists, err = h.shoppingListService.GetShoppingLists(c.Context())
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingLists, err)
	}

	return presenters.SuccessResponse(c, lists, fiber.StatusOK, domain.MessageSuccessGetShoppingLists)
}

func (h *shoppingListHandler) GetShoppingListDetails(c *fiber.Ctx) error {
	listID := c.Params("id")

	res, err := h.shoppingListService.GetShoppingListByID(c.Context(), listID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingLists)
}
