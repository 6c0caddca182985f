package handlers

import (
	"github.com/gofiber/fiber/v2"

	"samiksha/presentation-evaluator/internal/models"
)

type RubricHandler struct{}

func NewRubricHandler() *RubricHandler {
	return &RubricHandler{}
}

// HandleGetRubric handles GET /rubric: the static weight table and criterion
// definitions clients render alongside results.
func (h *RubricHandler) HandleGetRubric(c *fiber.Ctx) error {
	entries := make([]models.RubricEntry, 0, len(models.PresentationTypes))
	for _, t := range models.PresentationTypes {
		weights, err := models.WeightsFor(t)
		if err != nil {
			return err
		}
		entries = append(entries, models.RubricEntry{
			Type:        t,
			Description: models.TypeDescriptions[t],
			Criteria:    weights,
		})
	}

	return c.JSON(models.RubricResponse{
		Types:       entries,
		Definitions: models.CriterionDefinitions,
	})
}
