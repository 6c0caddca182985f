package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"samiksha/presentation-evaluator/internal/models"
)

// EvaluationParser is the single chokepoint between raw AI output and the
// typed pipeline. Nothing downstream ever sees a report that did not pass it.
type EvaluationParser interface {
	Parse(raw string) (*models.PresentationReport, error)
}

type evaluationParser struct {
	schema *jsonschema.Schema
}

func NewEvaluationParser() (EvaluationParser, error) {
	schema, err := compileReportSchema()
	if err != nil {
		return nil, err
	}
	return &evaluationParser{schema: schema}, nil
}

// Parse implements EvaluationParser.
func (p *evaluationParser) Parse(raw string) (*models.PresentationReport, error) {
	jsonStr := extractJSON(raw)

	var decoded any
	if err := json.Unmarshal([]byte(jsonStr), &decoded); err != nil {
		return nil, fmt.Errorf("response is not well-formed JSON: %w: %w", err, models.ErrMalformedResponse)
	}

	if err := p.schema.Validate(decoded); err != nil {
		return nil, fmt.Errorf("response does not match report schema: %w: %w", err, models.ErrMalformedResponse)
	}

	var report models.PresentationReport
	if err := json.Unmarshal([]byte(jsonStr), &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w: %w", err, models.ErrMalformedResponse)
	}

	if err := p.validate(&report); err != nil {
		return nil, err
	}

	return &report, nil
}

// validate re-checks shape invariants on the typed value. Most are already
// guaranteed by the schema; keeping them explicit here means the parser does
// not silently weaken if the schema document drifts.
func (p *evaluationParser) validate(report *models.PresentationReport) error {
	if !report.Type.Valid() {
		return fmt.Errorf("unknown presentation type %q: %w", report.Type, models.ErrMalformedResponse)
	}

	for _, criterion := range models.AllCriteria {
		result, ok := report.Results[criterion]
		if !ok {
			return fmt.Errorf("missing criterion %s: %w", criterion, models.ErrMalformedResponse)
		}
		if result.Score < 0 || result.Score > 100 {
			return fmt.Errorf("criterion %s score %d out of range: %w",
				criterion, result.Score, models.ErrMalformedResponse)
		}
	}

	// Feedback must carry substance for the criteria that count toward the
	// score, unless the model flagged the whole input as unusable.
	if !report.Error.IsError {
		applicable, err := models.CriteriaFor(report.Type)
		if err != nil {
			return err
		}
		for _, criterion := range applicable {
			if strings.TrimSpace(report.Results[criterion].Feedback) == "" {
				return fmt.Errorf("empty feedback for applicable criterion %s: %w",
					criterion, models.ErrMalformedResponse)
			}
		}
	}

	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or
// other formatting around it.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
