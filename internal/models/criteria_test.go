package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaFor(t *testing.T) {
	tests := []struct {
		name     string
		pType    PresentationType
		expected []Criterion
	}{
		{
			name:  "slides only",
			pType: TypeSlidesOnly,
			expected: []Criterion{
				CriterionContentQuality,
				CriterionSlideDesign,
				CriterionStructureFlow,
			},
		},
		{
			name:  "voice over",
			pType: TypeVoiceOver,
			expected: []Criterion{
				CriterionContentQuality,
				CriterionSlideDesign,
				CriterionStructureFlow,
				CriterionVoiceClarityDelivery,
			},
		},
		{
			name:  "face visible",
			pType: TypeFaceVisible,
			expected: []Criterion{
				CriterionContentQuality,
				CriterionSlideDesign,
				CriterionStructureFlow,
				CriterionVoiceClarityDelivery,
				CriterionEngagementExpression,
				CriterionBodyLanguage,
			},
		},
		{
			name:  "face plus screen",
			pType: TypeFacePlusScreen,
			expected: []Criterion{
				CriterionContentQuality,
				CriterionSlideDesign,
				CriterionStructureFlow,
				CriterionVoiceClarityDelivery,
				CriterionEngagementExpression,
				CriterionBodyLanguage,
				CriterionVisualEngagement,
				CriterionTechnicalQuality,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria, err := CriteriaFor(tt.pType)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, criteria)
		})
	}
}

func TestCriteriaForIsStable(t *testing.T) {
	for _, pType := range PresentationTypes {
		first, err := CriteriaFor(pType)
		require.NoError(t, err)
		second, err := CriteriaFor(pType)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestCriteriaForNoDuplicates(t *testing.T) {
	for _, pType := range PresentationTypes {
		criteria, err := CriteriaFor(pType)
		require.NoError(t, err)

		seen := map[Criterion]bool{}
		for _, c := range criteria {
			assert.False(t, seen[c], "duplicate criterion %s for %s", c, pType)
			seen[c] = true
		}
	}
}

func TestCriteriaForUnknownType(t *testing.T) {
	_, err := CriteriaFor(PresentationType("WEBINAR"))
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = WeightsFor(PresentationType(""))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestWeightsSumTo100(t *testing.T) {
	for _, pType := range PresentationTypes {
		weights, err := WeightsFor(pType)
		require.NoError(t, err)

		sum := 0
		for _, w := range weights {
			sum += w.Weight
		}
		assert.Equal(t, 100, sum, "weights for %s must sum to 100", pType)
	}
}

// The applicable subset grows strictly with modality richness: each type's
// criteria are a prefix-superset of the previous type's.
func TestCriteriaAreStrictlyAdditive(t *testing.T) {
	var previous []Criterion
	for _, pType := range PresentationTypes {
		criteria, err := CriteriaFor(pType)
		require.NoError(t, err)

		assert.Greater(t, len(criteria), len(previous), "criteria must grow for %s", pType)
		current := map[Criterion]bool{}
		for _, c := range criteria {
			current[c] = true
		}
		for _, c := range previous {
			assert.True(t, current[c], "%s must keep criterion %s", pType, c)
		}

		previous = criteria
	}
}
