package presenters

import (
	"errors"

	"household-backend/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  string                   `json:"status"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data,omitempty"`
	Errors  []domain.ValidationIssue `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ErrorResponse translates domain errors into HTTP responses. Missing
// aggregates become 404s, business-rule rejections become 400s carrying
// field-level issues, anything else is an infrastructure failure and
// becomes a 500.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Status:  "error",
		Message: message,
	}

	if err == nil {
		return c.Status(status).JSON(res)
	}

	if isNotFound(err) {
		res.Message = err.Error()
		return c.Status(fiber.StatusNotFound).JSON(res)
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		res.Message = validationErr.Message
		res.Errors = validationErr.Issues
		return c.Status(fiber.StatusBadRequest).JSON(res)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			res.Errors = append(res.Errors, domain.ValidationIssue{
				Field:   fe.Field(),
				Message: fe.Error(),
				Code:    fe.Tag(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(res)
	}

	res.Errors = []domain.ValidationIssue{{Message: err.Error()}}
	return c.Status(fiber.StatusInternalServerError).JSON(res)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrPantryItemNotFound) ||
		errors.Is(err, domain.ErrRecipeNotFound) ||
		errors.Is(err, domain.ErrMealPlanNotFound) ||
		errors.Is(err, domain.ErrShoppingListNotFound)
}
