package handlers

import (
	"household-backend/domain"
	"household-backend/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
)

type (
	UnitHandler interface {
		GetUnits(c *fiber.Ctx) error
	}

	unitHandler struct{}
)

func NewUnitHandler() UnitHandler {
	return &unitHandler{}
}

func (h *unitHandler) GetUnits(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, domain.Units, fiber.StatusOK, "units retrieved successfully")
}
