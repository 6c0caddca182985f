package models

import "fmt"

// CriterionWeight pairs a criterion with its relative importance for one
// presentation type. Weights per type always sum to 100.
type CriterionWeight struct {
	Criterion Criterion `json:"criterion"`
	Weight    int       `json:"weight"`
}

// weightTable is the static rubric. The applicable set grows strictly with
// modality richness; adding a new PresentationType requires a new entry here.
var weightTable = map[PresentationType][]CriterionWeight{
	TypeSlidesOnly: {
		{CriterionContentQuality, 50},
		{CriterionSlideDesign, 30},
		{CriterionStructureFlow, 20},
	},
	TypeVoiceOver: {
		{CriterionContentQuality, 40},
		{CriterionSlideDesign, 20},
		{CriterionStructureFlow, 15},
		{CriterionVoiceClarityDelivery, 25},
	},
	TypeFaceVisible: {
		{CriterionContentQuality, 35},
		{CriterionSlideDesign, 15},
		{CriterionStructureFlow, 10},
		{CriterionVoiceClarityDelivery, 20},
		{CriterionEngagementExpression, 10},
		{CriterionBodyLanguage, 10},
	},
	TypeFacePlusScreen: {
		{CriterionContentQuality, 30},
		{CriterionSlideDesign, 15},
		{CriterionStructureFlow, 10},
		{CriterionVoiceClarityDelivery, 15},
		{CriterionEngagementExpression, 10},
		{CriterionBodyLanguage, 10},
		{CriterionVisualEngagement, 10},
		{CriterionTechnicalQuality, 10},
	},
}

// WeightsFor returns the applicable criteria with their weights for a
// presentation type, in rubric order. An unknown type is a caller bug and
// fails loudly instead of returning an empty rubric.
func WeightsFor(t PresentationType) ([]CriterionWeight, error) {
	weights, ok := weightTable[t]
	if !ok {
		return nil, fmt.Errorf("no rubric for presentation type %q: %w", t, ErrMalformedResponse)
	}
	return weights, nil
}

// CriteriaFor returns just the applicable criterion set for a presentation
// type, in rubric order.
func CriteriaFor(t PresentationType) ([]Criterion, error) {
	weights, err := WeightsFor(t)
	if err != nil {
		return nil, err
	}

	criteria := make([]Criterion, 0, len(weights))
	for _, w := range weights {
		criteria = append(criteria, w.Criterion)
	}
	return criteria, nil
}

// CriterionDefinitions describes each criterion for the rubric prompt and the
// public rubric endpoint.
var CriterionDefinitions = map[Criterion]string{
	CriterionContentQuality:       "Accuracy, relevance, and depth of information.",
	CriterionSlideDesign:          "Visual appeal, clarity, effective use of graphics.",
	CriterionStructureFlow:        "Logical organization and smooth transitions.",
	CriterionVoiceClarityDelivery: "Pronunciation, pace, confidence in narration.",
	CriterionEngagementExpression: "Ability to maintain interest through tone and enthusiasm.",
	CriterionBodyLanguage:         "Eye contact, gestures, facial expressions.",
	CriterionVisualEngagement:     "Use of video elements to enhance understanding.",
	CriterionTechnicalQuality:     "Audio/video clarity, absence of distractions.",
}

// TypeDescriptions describes each modality for the rubric prompt.
var TypeDescriptions = map[PresentationType]string{
	TypeSlidesOnly:     "Only slides (PPT/PDF), no audio or video.",
	TypeVoiceOver:      "Slides with recorded narration (audio only).",
	TypeFaceVisible:    "Slides with video of presenter's face and voice.",
	TypeFacePlusScreen: "Video showing both the presenter's face and slides (e.g., picture-in-picture).",
}
