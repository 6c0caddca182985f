package services

import (
	"fmt"
	"math"

	"samiksha/presentation-evaluator/internal/models"
)

// ScorerService reduces a validated report to one comparable number. It is a
// pure function of the report and its type: the applicable subset comes from
// the static rubric and the reduction is the rounded unweighted mean over
// that subset. The rubric's weights intentionally play no part here; they
// only bias the model's own per-criterion scoring.
type ScorerService interface {
	OverallScore(report *models.PresentationReport) (int, error)
}

type scorerService struct{}

func NewScorerService() ScorerService {
	return &scorerService{}
}

// OverallScore implements ScorerService.
func (s *scorerService) OverallScore(report *models.PresentationReport) (int, error) {
	if report.Error.IsError {
		return 0, fmt.Errorf("cannot score: %s: %w", report.Error.Message, models.ErrSelfReported)
	}

	criteria, err := models.CriteriaFor(report.Type)
	if err != nil {
		return 0, err
	}
	if len(criteria) == 0 {
		return 0, fmt.Errorf("empty criteria set for type %q: %w", report.Type, models.ErrMalformedResponse)
	}

	sum := 0
	for _, criterion := range criteria {
		result, ok := report.Results[criterion]
		if !ok {
			return 0, fmt.Errorf("missing criterion %s: %w", criterion, models.ErrMalformedResponse)
		}
		sum += result.Score
	}

	mean := float64(sum) / float64(len(criteria))
	return int(math.Round(mean)), nil
}
