package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"samiksha/presentation-evaluator/internal/models"
)

func TestResponseSchemaShape(t *testing.T) {
	schema := ResponseSchema()

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.ElementsMatch(t,
		[]string{"title", "summary", "type", "evaluation", "overallFeedback", "error"},
		schema.Required,
	)

	typeSchema := schema.Properties["type"]
	require.NotNil(t, typeSchema)
	assert.Len(t, typeSchema.Enum, len(models.PresentationTypes))

	evaluation := schema.Properties["evaluation"]
	require.NotNil(t, evaluation)
	assert.Len(t, evaluation.Required, len(models.AllCriteria))
	for _, c := range models.AllCriteria {
		criterion := evaluation.Properties[string(c)]
		require.NotNil(t, criterion, "schema must declare %s", c)
		assert.Equal(t, genai.TypeInteger, criterion.Properties["score"].Type)
		assert.Equal(t, genai.TypeString, criterion.Properties["feedback"].Type)
	}

	errSchema := schema.Properties["error"]
	require.NotNil(t, errSchema)
	assert.Equal(t, []string{"isError"}, errSchema.Required)
}

func TestCompileReportSchema(t *testing.T) {
	schema, err := compileReportSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)

	// The compiled schema must reject a document the genai declaration would
	// also refuse.
	assert.Error(t, schema.Validate(map[string]any{"title": "only a title"}))
}
