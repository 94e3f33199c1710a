package handlers

import (
	"strconv"
	"time"

	"household-backend/domain"
	"household-backend/internal/api/presenters"
	"household-backend/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		CreateMealPlan(c *fiber.Ctx) error
		UpdateMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
		GetMealPlans(c *fiber.Ctx) error
		GetMealPlanDetails(c *fiber.Ctx) error
		CompleteMeal(c *fiber.Ctx) error
		UncompleteMeal(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) CreateMealPlan(c *fiber.Ctx) error {
	req := new(domain.CreateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.NewBodyParseError(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveMealPlan, err)
	}

	res, err := h.mealPlanService.CreateMealPlan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveMealPlan)
}

func (h *mealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	planID := c.Params("id")
	req := new(domain.UpdateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.NewBodyParseError(err))
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	res, err := h.mealPlanService.UpdateMealPlan(c.Context(), planID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateMealPlan)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	planID := c.Params("id")

	if err := h.mealPlanService.DeleteMealPlan(c.Context(), planID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	var (
		plans []domain.MealPlanResponse
		err   error
	)
	switch {
	case c.QueryBool("active"):
		plans, err = h.mealPlanService.GetActiveMealPlans(c.Context())
	case c.Query("date") != "":
		var date time.Time
		date, err = time.Parse("2006-01-02", c.Query("date"))
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlans, err)
		}
		plans, err = h.mealPlanService.GetMealPlansIncludingDate(c.Context(), date)
	default:
		plans, err = h.mealPlanService.GetMealPlans(c.Context())
	}
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, plans, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) GetMealPlanDetails(c *fiber.Ctx) error {
	planID := c.Params("id")

	res, err := h.mealPlanService.GetMealPlanByID(c.Context(), planID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) CompleteMeal(c *fiber.Ctx) error {
	planID := c.Params("id")
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteMeal, err)
	}

	res, err := h.mealPlanService.CompleteMeal(c.Context(), planID, index)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteMeal)
}

func (h *mealPlanHandler) UncompleteMeal(c *fiber.Ctx) error {
	planID := c.Params("id")
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUncompleteMeal, err)
	}

	res, err := h.mealPlanService.UncompleteMeal(c.Context(), planID, index)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUncompleteMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUncompleteMeal)
}
