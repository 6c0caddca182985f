package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"samiksha/presentation-evaluator/internal/models"
)

// ErrorHandler maps pipeline failure kinds onto HTTP statuses. Anything a
// handler returns unwrapped ends up here.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInputMissing):
		code = fiber.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, models.ErrSelfReported):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, models.ErrMalformedResponse), errors.Is(err, models.ErrUpstreamFailure):
		code = fiber.StatusBadGateway
	case errors.Is(err, models.ErrPersistenceFailure):
		code = fiber.StatusInternalServerError
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
