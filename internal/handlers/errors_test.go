package handlers

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samiksha/presentation-evaluator/internal/models"
)

func TestErrorHandlerMapsFailureKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"input missing", fmt.Errorf("ingest failed: %w", models.ErrInputMissing), fiber.StatusBadRequest},
		{"not found", fmt.Errorf("evaluation abc: %w", models.ErrNotFound), fiber.StatusNotFound},
		{"self reported", fmt.Errorf("cannot score: %w", models.ErrSelfReported), fiber.StatusUnprocessableEntity},
		{"malformed response", fmt.Errorf("bad payload: %w", models.ErrMalformedResponse), fiber.StatusBadGateway},
		{"upstream failure", fmt.Errorf("stream died: %w", models.ErrUpstreamFailure), fiber.StatusBadGateway},
		{"persistence failure", fmt.Errorf("insert: %w", models.ErrPersistenceFailure), fiber.StatusInternalServerError},
		{"unclassified", fmt.Errorf("something else"), fiber.StatusInternalServerError},
		{"fiber error", fiber.NewError(fiber.StatusTeapot, "short and stout"), fiber.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
			app.Get("/boom", func(c *fiber.Ctx) error {
				return tt.err
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expected, resp.StatusCode)
		})
	}
}
