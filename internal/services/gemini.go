package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"samiksha/presentation-evaluator/internal/models"
)

type GeminiService interface {
	// EvaluateMedia sends the encoded recording with the rubric instruction
	// and the strict response schema, then assembles the streamed fragments
	// into one raw payload. No validation happens here; the parser owns that.
	EvaluateMedia(ctx context.Context, payload *MediaPayload) (string, error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type geminiService struct {
	client        *genai.Client
	modelName     string
	embedModel    string
	promptBuilder *PromptBuilder
	schema        *genai.Schema
	log           *logrus.Logger
}

func NewGeminiService(apiKey, modelName, embedModel string, log *logrus.Logger) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:        client,
		modelName:     modelName,
		embedModel:    embedModel,
		promptBuilder: NewPromptBuilder(),
		schema:        ResponseSchema(),
		log:           log,
	}, nil
}

// EvaluateMedia implements GeminiService.
func (g *geminiService) EvaluateMedia(ctx context.Context, payload *MediaPayload) (string, error) {
	temperature := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		ResponseMIMEType:  "application/json",
		ResponseSchema:    g.schema,
		SystemInstruction: genai.NewContentFromText(g.promptBuilder.BuildSystemInstruction(), genai.RoleUser),
		MaxOutputTokens:   8192,
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(payload.Data, payload.MimeType),
			genai.NewPartFromText(g.promptBuilder.BuildEvaluationInstruction(payload.MimeType)),
		}, genai.RoleUser),
	}

	g.log.WithFields(logrus.Fields{
		"model":     g.modelName,
		"mime_type": payload.MimeType,
		"bytes":     len(payload.Data),
	}).Info("sending presentation for evaluation")

	// Fragments arrive in order and are consumed exactly once; the loop blocks
	// on each next chunk until the capability finishes or ctx expires.
	var assembled strings.Builder
	for chunk, err := range g.client.Models.GenerateContentStream(ctx, g.modelName, contents, config) {
		if err != nil {
			return "", fmt.Errorf("response stream failed: %w: %w", err, models.ErrUpstreamFailure)
		}
		assembled.WriteString(chunk.Text())
	}

	raw := assembled.String()
	if raw == "" {
		return "", fmt.Errorf("empty response stream: %w", models.ErrUpstreamFailure)
	}

	g.log.WithField("chars", len(raw)).Debug("evaluation response assembled")
	return raw, nil
}

// GenerateEmbedding implements GeminiService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long for the embedding model
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}
