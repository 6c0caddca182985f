package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresentationTypeValid(t *testing.T) {
	for _, pType := range PresentationTypes {
		assert.True(t, pType.Valid())
	}

	assert.False(t, PresentationType("").Valid())
	assert.False(t, PresentationType("slides_only").Valid())
	assert.False(t, PresentationType("LIVE_DEMO").Valid())
}

func sampleResults() CriterionResults {
	results := CriterionResults{}
	for i, c := range AllCriteria {
		results[c] = CriterionResult{
			Score:    60 + i,
			Feedback: "feedback for " + string(c),
		}
	}
	return results
}

// Persisting and scanning the jsonb column must preserve every criterion
// result exactly.
func TestCriterionResultsRoundTrip(t *testing.T) {
	original := sampleResults()

	value, err := original.Value()
	require.NoError(t, err)

	var restored CriterionResults
	require.NoError(t, restored.Scan(value))

	assert.Equal(t, original, restored)
}

func TestCriterionResultsScanString(t *testing.T) {
	original := sampleResults()
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored CriterionResults
	require.NoError(t, restored.Scan(string(data)))
	assert.Equal(t, original, restored)
}

func TestCriterionResultsScanNil(t *testing.T) {
	var restored CriterionResults
	require.NoError(t, restored.Scan(nil))
	assert.Nil(t, restored)
}

func TestCriterionResultsScanUnsupportedType(t *testing.T) {
	var restored CriterionResults
	assert.Error(t, restored.Scan(42))
}

func TestEvaluationReport(t *testing.T) {
	eval := Evaluation{
		Title:           "Quarterly Review",
		Summary:         "A walkthrough of Q3 results.",
		Type:            TypeVoiceOver,
		Results:         sampleResults(),
		OverallFeedback: "Solid delivery overall.",
		Error:           ReportError{IsError: false},
	}

	report := eval.Report()
	assert.Equal(t, eval.Title, report.Title)
	assert.Equal(t, eval.Summary, report.Summary)
	assert.Equal(t, eval.Type, report.Type)
	assert.Equal(t, eval.Results, report.Results)
	assert.Equal(t, eval.OverallFeedback, report.OverallFeedback)
	assert.Equal(t, eval.Error, report.Error)
}
