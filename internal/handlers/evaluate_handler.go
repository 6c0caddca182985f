package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"samiksha/presentation-evaluator/internal/models"
	"samiksha/presentation-evaluator/internal/services"
)

var validate = validator.New()

type EvaluateHandler struct {
	evaluator services.EvaluatorService
}

func NewEvaluateHandler(evaluator services.EvaluatorService) *EvaluateHandler {
	return &EvaluateHandler{
		evaluator: evaluator,
	}
}

type evaluateParams struct {
	OwnerID string `validate:"required"`
}

// HandleEvaluate handles POST /evaluations. The caller waits out the full
// pipeline; navigating away cancels the in-flight AI call and leaves nothing
// persisted.
func (h *EvaluateHandler) HandleEvaluate(c *fiber.Ctx) error {
	params := evaluateParams{OwnerID: c.Get("X-Owner-ID")}
	if err := validate.Struct(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "X-Owner-ID header is required",
		})
	}

	file, err := c.FormFile("presentation")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "no presentation file supplied",
		})
	}

	evaluation, overall, err := h.evaluator.EvaluatePresentation(c.UserContext(), file, params.OwnerID)
	if err != nil {
		return err
	}

	response := buildEvaluationResponse(evaluation, overall)

	if evaluation.Error.IsError {
		// Structurally valid but unusable input; kept for audit, never scored.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(response)
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

func buildEvaluationResponse(eval *models.Evaluation, overall *int) models.EvaluationResponse {
	response := models.EvaluationResponse{
		ID:              eval.ID.String(),
		Title:           eval.Title,
		Summary:         eval.Summary,
		Type:            eval.Type,
		Results:         eval.Results,
		OverallFeedback: eval.OverallFeedback,
		OverallScore:    overall,
		Error:           eval.Error,
		CreatedAt:       eval.CreatedAt,
	}

	if !eval.Error.IsError {
		if weights, err := models.WeightsFor(eval.Type); err == nil {
			response.Applicable = weights
		}
	}

	return response
}
