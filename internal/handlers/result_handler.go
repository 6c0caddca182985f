package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"samiksha/presentation-evaluator/internal/models"
	"samiksha/presentation-evaluator/internal/repositories"
	"samiksha/presentation-evaluator/internal/services"
)

type ResultHandler struct {
	evalRepo      repositories.EvaluationRepository
	scorer        services.ScorerService
	geminiService services.GeminiService
	qdrantService services.QdrantService
}

func NewResultHandler(
	evalRepo repositories.EvaluationRepository,
	scorer services.ScorerService,
	geminiService services.GeminiService,
	qdrantService services.QdrantService,
) *ResultHandler {
	return &ResultHandler{
		evalRepo:      evalRepo,
		scorer:        scorer,
		geminiService: geminiService,
		qdrantService: qdrantService,
	}
}

// HandleGetResult handles GET /evaluations/:id.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	evaluation, err := h.findOwned(c)
	if err != nil {
		return err
	}

	return c.JSON(buildEvaluationResponse(evaluation, h.score(evaluation)))
}

// HandleListResults handles GET /evaluations: the owner's dashboard listing,
// newest first.
func (h *ResultHandler) HandleListResults(c *fiber.Ctx) error {
	ownerID := c.Get("X-Owner-ID")
	if ownerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "X-Owner-ID header is required",
		})
	}

	evaluations, err := h.evalRepo.FindByOwner(ownerID)
	if err != nil {
		return err
	}

	summaries := make([]models.EvaluationSummary, 0, len(evaluations))
	for i := range evaluations {
		eval := &evaluations[i]
		summaries = append(summaries, models.EvaluationSummary{
			ID:           eval.ID.String(),
			Title:        eval.Title,
			Type:         eval.Type,
			OverallScore: h.score(eval),
			IsError:      eval.Error.IsError,
			CreatedAt:    eval.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"evaluations": summaries,
	})
}

type similarParams struct {
	Limit int `validate:"min=1,max=20"`
}

// HandleGetSimilar handles GET /evaluations/:id/similar: semantic neighbors
// among the same owner's past evaluations.
func (h *ResultHandler) HandleGetSimilar(c *fiber.Ctx) error {
	evaluation, err := h.findOwned(c)
	if err != nil {
		return err
	}

	if evaluation.Error.IsError {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "evaluation was not scorable and is not indexed",
		})
	}

	params := similarParams{Limit: c.QueryInt("limit", 5)}
	if err := validate.Struct(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be between 1 and 20",
		})
	}

	embedding, err := h.geminiService.GenerateEmbedding(c.UserContext(), services.EmbeddingText(evaluation))
	if err != nil {
		return err
	}

	neighbors, err := h.qdrantService.SearchSimilar(
		c.UserContext(),
		embedding,
		evaluation.OwnerID,
		evaluation.ID.String(),
		params.Limit,
	)
	if err != nil {
		return err
	}

	similar := make([]models.SimilarEvaluation, 0, len(neighbors))
	for _, n := range neighbors {
		similar = append(similar, models.SimilarEvaluation{
			ID:         n.EvaluationID,
			Title:      n.Title,
			Similarity: n.Score,
		})
	}

	return c.JSON(fiber.Map{
		"similar": similar,
	})
}

// findOwned resolves :id and enforces that the requester owns the record.
func (h *ResultHandler) findOwned(c *fiber.Ctx) (*models.Evaluation, error) {
	evalID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid evaluation ID format")
	}

	evaluation, err := h.evalRepo.FindByID(evalID)
	if err != nil {
		return nil, err
	}

	if ownerID := c.Get("X-Owner-ID"); ownerID != "" && evaluation.OwnerID != ownerID {
		// Do not leak existence of another owner's records.
		return nil, fiber.NewError(fiber.StatusNotFound, "evaluation not found")
	}

	return evaluation, nil
}

func (h *ResultHandler) score(eval *models.Evaluation) *int {
	report := eval.Report()
	score, err := h.scorer.OverallScore(&report)
	if err != nil {
		// Self-reported records legitimately carry no score. Anything else
		// means a validated row went bad after write; surface nothing rather
		// than a wrong number.
		return nil
	}
	return &score
}
