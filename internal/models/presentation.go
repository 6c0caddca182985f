package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PresentationType is the recording modality detected by the evaluator. It
// decides which criteria count toward the overall score.
type PresentationType string

const (
	TypeSlidesOnly     PresentationType = "SLIDES_ONLY"
	TypeVoiceOver      PresentationType = "VOICE_OVER"
	TypeFaceVisible    PresentationType = "FACE_VISIBLE"
	TypeFacePlusScreen PresentationType = "FACE_PLUS_SCREEN"
)

// PresentationTypes lists the closed set of modalities in ascending richness.
var PresentationTypes = []PresentationType{
	TypeSlidesOnly,
	TypeVoiceOver,
	TypeFaceVisible,
	TypeFacePlusScreen,
}

func (t PresentationType) Valid() bool {
	switch t {
	case TypeSlidesOnly, TypeVoiceOver, TypeFaceVisible, TypeFacePlusScreen:
		return true
	}
	return false
}

// Criterion is one scored dimension of presentation quality.
type Criterion string

const (
	CriterionContentQuality       Criterion = "CONTENT_QUALITY"
	CriterionSlideDesign          Criterion = "SLIDE_DESIGN"
	CriterionStructureFlow        Criterion = "STRUCTURE_FLOW"
	CriterionVoiceClarityDelivery Criterion = "VOICE_CLARITY_DELIVERY"
	CriterionEngagementExpression Criterion = "ENGAGEMENT_EXPRESSION"
	CriterionBodyLanguage         Criterion = "BODY_LANGUAGE"
	CriterionVisualEngagement     Criterion = "VISUAL_ENGAGEMENT"
	CriterionTechnicalQuality     Criterion = "TECHNICAL_QUALITY"
)

// AllCriteria is the full closed set, in the order the rubric presents them.
// Every report carries results for all of them regardless of modality.
var AllCriteria = []Criterion{
	CriterionContentQuality,
	CriterionSlideDesign,
	CriterionStructureFlow,
	CriterionVoiceClarityDelivery,
	CriterionEngagementExpression,
	CriterionBodyLanguage,
	CriterionVisualEngagement,
	CriterionTechnicalQuality,
}

// CriterionResult is the model's judgement for a single criterion.
type CriterionResult struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// CriterionResults holds one result per criterion, persisted as a jsonb column.
type CriterionResults map[Criterion]CriterionResult

// Value implements driver.Valuer for jsonb storage.
func (cr CriterionResults) Value() (driver.Value, error) {
	data, err := json.Marshal(cr)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal criterion results: %w", err)
	}
	return data, nil
}

// Scan implements sql.Scanner for jsonb storage.
func (cr *CriterionResults) Scan(value interface{}) error {
	if value == nil {
		*cr = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for criterion results: %T", value)
	}

	if err := json.Unmarshal(data, cr); err != nil {
		return fmt.Errorf("failed to unmarshal criterion results: %w", err)
	}
	return nil
}

// ReportError is the model's own verdict on whether the input was usable,
// e.g. a corrupted file or a recording that is not a presentation at all.
type ReportError struct {
	IsError bool   `gorm:"column:is_error;not null;default:false" json:"isError"`
	Message string `gorm:"column:error_message;type:text" json:"message,omitempty"`
}

// PresentationReport is the structured payload the AI capability returns,
// decoded verbatim. The parser promotes it into an Evaluation row once it
// passes validation.
type PresentationReport struct {
	Title           string           `json:"title"`
	Summary         string           `json:"summary"`
	Type            PresentationType `json:"type"`
	Results         CriterionResults `json:"evaluation"`
	OverallFeedback string           `json:"overallFeedback"`
	Error           ReportError      `json:"error"`
}
