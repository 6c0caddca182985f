package services

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"google.golang.org/genai"

	"samiksha/presentation-evaluator/internal/models"
)

// The response shape is declared twice from the same catalog: once as a genai
// schema that constrains the model's decoding, and once as a compiled JSON
// Schema the parser re-checks the assembled payload against. Constraining the
// request is the primary correctness mechanism; the parser check is the
// boundary that keeps anything non-conforming out of the pipeline.

func criterionResultSchema() *genai.Schema {
	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"score", "feedback"},
		Properties: map[string]*genai.Schema{
			"score":    {Type: genai.TypeInteger},
			"feedback": {Type: genai.TypeString},
		},
	}
}

// ResponseSchema declares the exact report shape the model must emit.
func ResponseSchema() *genai.Schema {
	criteriaProps := make(map[string]*genai.Schema, len(models.AllCriteria))
	criteriaKeys := make([]string, 0, len(models.AllCriteria))
	for _, c := range models.AllCriteria {
		criteriaProps[string(c)] = criterionResultSchema()
		criteriaKeys = append(criteriaKeys, string(c))
	}

	typeEnum := make([]string, 0, len(models.PresentationTypes))
	for _, t := range models.PresentationTypes {
		typeEnum = append(typeEnum, string(t))
	}

	return &genai.Schema{
		Type:     genai.TypeObject,
		Required: []string{"title", "summary", "type", "evaluation", "overallFeedback", "error"},
		Properties: map[string]*genai.Schema{
			"title":   {Type: genai.TypeString},
			"summary": {Type: genai.TypeString},
			"type": {
				Type: genai.TypeString,
				Enum: typeEnum,
			},
			"evaluation": {
				Type:       genai.TypeObject,
				Required:   criteriaKeys,
				Properties: criteriaProps,
			},
			"overallFeedback": {Type: genai.TypeString},
			"error": {
				Type:     genai.TypeObject,
				Required: []string{"isError"},
				Properties: map[string]*genai.Schema{
					"isError": {Type: genai.TypeBoolean},
					"message": {Type: genai.TypeString},
				},
			},
		},
	}
}

// reportSchemaDoc is the same shape as a plain JSON Schema document, used to
// validate what actually came back.
func reportSchemaDoc() map[string]any {
	criterionResult := func() map[string]any {
		return map[string]any{
			"type":     "object",
			"required": []any{"score", "feedback"},
			"properties": map[string]any{
				"score": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 100,
				},
				"feedback": map[string]any{"type": "string"},
			},
		}
	}

	criteriaProps := map[string]any{}
	criteriaKeys := []any{}
	for _, c := range models.AllCriteria {
		criteriaProps[string(c)] = criterionResult()
		criteriaKeys = append(criteriaKeys, string(c))
	}

	typeEnum := []any{}
	for _, t := range models.PresentationTypes {
		typeEnum = append(typeEnum, string(t))
	}

	return map[string]any{
		"type":     "object",
		"required": []any{"title", "summary", "type", "evaluation", "overallFeedback", "error"},
		"properties": map[string]any{
			"title":   map[string]any{"type": "string"},
			"summary": map[string]any{"type": "string"},
			"type": map[string]any{
				"type": "string",
				"enum": typeEnum,
			},
			"evaluation": map[string]any{
				"type":       "object",
				"required":   criteriaKeys,
				"properties": criteriaProps,
			},
			"overallFeedback": map[string]any{"type": "string"},
			"error": map[string]any{
				"type":     "object",
				"required": []any{"isError"},
				"properties": map[string]any{
					"isError": map[string]any{"type": "boolean"},
					"message": map[string]any{"type": "string"},
				},
			},
		},
	}
}

func compileReportSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("report.schema.json", reportSchemaDoc()); err != nil {
		return nil, fmt.Errorf("failed to add report schema resource: %w", err)
	}

	schema, err := compiler.Compile("report.schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile report schema: %w", err)
	}
	return schema, nil
}
