package models

import "time"

// EvaluationResponse is the detail payload for a persisted evaluation.
// OverallScore is nil when the model self-reported the input as unusable.
type EvaluationResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Summary         string            `json:"summary"`
	Type            PresentationType  `json:"type"`
	Results         CriterionResults  `json:"evaluation"`
	OverallFeedback string            `json:"overall_feedback"`
	OverallScore    *int              `json:"overall_score,omitempty"`
	Applicable      []CriterionWeight `json:"applicable_criteria,omitempty"`
	Error           ReportError       `json:"error"`
	CreatedAt       time.Time         `json:"created_at"`
}

// EvaluationSummary is one row of the owner's dashboard listing.
type EvaluationSummary struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Type         PresentationType `json:"type"`
	OverallScore *int             `json:"overall_score,omitempty"`
	IsError      bool             `json:"is_error"`
	CreatedAt    time.Time        `json:"created_at"`
}

// SimilarEvaluation is one semantic neighbor from the similarity index.
type SimilarEvaluation struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Similarity float32 `json:"similarity"`
}

// RubricEntry is the public view of one modality's rubric.
type RubricEntry struct {
	Type        PresentationType  `json:"type"`
	Description string            `json:"description"`
	Criteria    []CriterionWeight `json:"criteria"`
}

// RubricResponse is the full static rubric: modalities, their applicable
// criteria with weights, and per-criterion definitions.
type RubricResponse struct {
	Types       []RubricEntry        `json:"types"`
	Definitions map[Criterion]string `json:"definitions"`
}
