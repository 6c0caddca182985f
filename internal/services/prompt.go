package services

import (
	"fmt"
	"strings"

	"samiksha/presentation-evaluator/internal/models"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSystemInstruction renders the full evaluation rubric: the four
// modalities, the weight table, per-criterion definitions, and the feedback
// style guide. The weights are instructions to the model; the service itself
// aggregates with an unweighted mean over the applicable subset.
func (pb *PromptBuilder) BuildSystemInstruction() string {
	var sb strings.Builder

	sb.WriteString(`# System Instructions for LLM-Based Presentation Evaluation

## Objective

You are an expert AI evaluator tasked with assessing student presentations based on the supplied recording. Your goal is to provide objective, actionable, and detailed feedback for each submission, following the specified evaluation criteria and weightages according to the presentation type.

## Evaluation Types

Presentations are categorized as one of the following types:

`)

	for _, t := range models.PresentationTypes {
		fmt.Fprintf(&sb, "- **%s**: %s\n", t, models.TypeDescriptions[t])
	}

	sb.WriteString("\n## Criteria and Weightages\n\nEach type has distinct evaluation criteria and assigned weightages (total 100):\n\n")
	sb.WriteString(pb.renderWeightTable())

	sb.WriteString(`
## Instructions

1. **Identify Presentation Type**
 - Inspect the recording and determine the presentation type from the provided enum.

2. **Apply Relevant Criteria**
 - Evaluate only the criteria relevant to the identified type.
 - Use the corresponding weightage for each criterion.

3. **Scoring**
 - Assign a score (0-100) for each criterion, reflecting the quality and effectiveness as per the definitions.

4. **Feedback Generation**
 - For each criterion, provide a brief summary of strengths and specific, actionable suggestions for improvement.
 - Ensure feedback is constructive, clear, and tailored to the submission.

5. **Tone and Style**
 - Use supportive, professional, and student-friendly language.
 - Avoid jargon; ensure clarity and accessibility.

6. **Consistency**
 - Ensure all evaluations follow the rubric and maintain objectivity.
 - Do not introduce new criteria or change weightages.

## Criterion Definitions

`)

	for _, c := range models.AllCriteria {
		fmt.Fprintf(&sb, "- **%s:** %s\n", c, models.CriterionDefinitions[c])
	}

	sb.WriteString(`
## Output Format

- Strictly follow the structured output format as defined in the request schema.
- Populate every criterion entry, including criteria that do not apply to the detected type.
- Do not add extra fields or modify the schema.
- The title and summary fields should contain a generated title of the presentation and a summary.
- If the input is corrupted, irrelevant, or otherwise not evaluable, set error.isError to true and explain in error.message.
`)

	return sb.String()
}

// BuildEvaluationInstruction is the short user-turn text accompanying the
// media part.
func (pb *PromptBuilder) BuildEvaluationInstruction(mimeType string) string {
	subtype := mimeType
	if idx := strings.Index(mimeType, "/"); idx >= 0 {
		subtype = mimeType[idx+1:]
	}
	return fmt.Sprintf("evaluate this %s", subtype)
}

func (pb *PromptBuilder) renderWeightTable() string {
	var sb strings.Builder

	sb.WriteString("| Criteria Enum |")
	for _, t := range models.PresentationTypes {
		fmt.Fprintf(&sb, " %s |", t)
	}
	sb.WriteString("\n|---|")
	for range models.PresentationTypes {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")

	for _, c := range models.AllCriteria {
		fmt.Fprintf(&sb, "| %s |", c)
		for _, t := range models.PresentationTypes {
			weights, err := models.WeightsFor(t)
			if err != nil {
				continue
			}
			cell := "—"
			for _, w := range weights {
				if w.Criterion == c {
					cell = fmt.Sprintf("%d", w.Weight)
					break
				}
			}
			fmt.Fprintf(&sb, " %s |", cell)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
