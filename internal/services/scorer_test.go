package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samiksha/presentation-evaluator/internal/models"
)

func fullReport(pType models.PresentationType, scores map[models.Criterion]int) *models.PresentationReport {
	results := models.CriterionResults{}
	for _, c := range models.AllCriteria {
		score := 50
		if s, ok := scores[c]; ok {
			score = s
		}
		results[c] = models.CriterionResult{
			Score:    score,
			Feedback: "feedback for " + string(c),
		}
	}

	return &models.PresentationReport{
		Title:           "Test Presentation",
		Summary:         "A presentation used in tests.",
		Type:            pType,
		Results:         results,
		OverallFeedback: "Overall feedback.",
	}
}

func TestOverallScoreSlidesOnly(t *testing.T) {
	scorer := NewScorerService()

	// Only the three applicable criteria count; the other five are present
	// but irrelevant to the mean.
	report := fullReport(models.TypeSlidesOnly, map[models.Criterion]int{
		models.CriterionContentQuality: 90,
		models.CriterionSlideDesign:    80,
		models.CriterionStructureFlow:  70,
	})

	score, err := scorer.OverallScore(report)
	require.NoError(t, err)
	assert.Equal(t, 80, score)
}

func TestOverallScoreFacePlusScreen(t *testing.T) {
	scorer := NewScorerService()

	scores := map[models.Criterion]int{}
	for _, c := range models.AllCriteria {
		scores[c] = 75
	}

	score, err := scorer.OverallScore(fullReport(models.TypeFacePlusScreen, scores))
	require.NoError(t, err)
	assert.Equal(t, 75, score)
}

func TestOverallScoreRounds(t *testing.T) {
	scorer := NewScorerService()

	// mean of 90, 80, 75 = 81.67 -> 82
	report := fullReport(models.TypeSlidesOnly, map[models.Criterion]int{
		models.CriterionContentQuality: 90,
		models.CriterionSlideDesign:    80,
		models.CriterionStructureFlow:  75,
	})

	score, err := scorer.OverallScore(report)
	require.NoError(t, err)
	assert.Equal(t, 82, score)
}

func TestOverallScoreWithinRange(t *testing.T) {
	scorer := NewScorerService()

	for _, pType := range models.PresentationTypes {
		for _, base := range []int{0, 1, 50, 99, 100} {
			scores := map[models.Criterion]int{}
			for _, c := range models.AllCriteria {
				scores[c] = base
			}

			score, err := scorer.OverallScore(fullReport(pType, scores))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
			assert.Equal(t, base, score)
		}
	}
}

func TestOverallScoreIdempotent(t *testing.T) {
	scorer := NewScorerService()

	report := fullReport(models.TypeFaceVisible, map[models.Criterion]int{
		models.CriterionContentQuality:       88,
		models.CriterionVoiceClarityDelivery: 63,
	})

	first, err := scorer.OverallScore(report)
	require.NoError(t, err)
	second, err := scorer.OverallScore(report)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOverallScoreRefusesSelfReportedError(t *testing.T) {
	scorer := NewScorerService()

	report := fullReport(models.TypeSlidesOnly, nil)
	report.Error = models.ReportError{
		IsError: true,
		Message: "the file does not contain a presentation",
	}

	_, err := scorer.OverallScore(report)
	assert.ErrorIs(t, err, models.ErrSelfReported)
}

func TestOverallScoreUnknownType(t *testing.T) {
	scorer := NewScorerService()

	report := fullReport(models.TypeSlidesOnly, nil)
	report.Type = models.PresentationType("KARAOKE")

	_, err := scorer.OverallScore(report)
	assert.ErrorIs(t, err, models.ErrMalformedResponse)
}

func TestOverallScoreMissingCriterion(t *testing.T) {
	scorer := NewScorerService()

	report := fullReport(models.TypeVoiceOver, nil)
	delete(report.Results, models.CriterionVoiceClarityDelivery)

	_, err := scorer.OverallScore(report)
	assert.ErrorIs(t, err, models.ErrMalformedResponse)
}
