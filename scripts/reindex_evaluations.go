package main

import (
	"context"
	"log"

	"samiksha/presentation-evaluator/internal/config"
	"samiksha/presentation-evaluator/internal/models"
	"samiksha/presentation-evaluator/internal/services"
)

// Rebuilds the qdrant similarity index from the evaluations table, e.g. after
// pointing the service at a fresh qdrant instance. Upserts are keyed by
// evaluation id, so running this repeatedly is safe.
func main() {
	log.Println("Starting evaluation reindex...")

	cfg := config.Load()
	logger := config.InitLogger(cfg)

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	geminiService, err := services.NewGeminiService(
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.EmbedModel,
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(); err != nil {
		log.Fatalf("Failed to initialize collection: %v", err)
	}

	ctx := context.Background()
	indexed, skipped := 0, 0

	var evaluations []models.Evaluation
	if err := db.Order("created_at ASC").Find(&evaluations).Error; err != nil {
		log.Fatalf("Failed to load evaluations: %v", err)
	}

	for i := range evaluations {
		eval := &evaluations[i]

		// Self-reported error records are kept for audit only and stay out
		// of the index.
		if eval.Error.IsError {
			skipped++
			continue
		}

		embedding, err := geminiService.GenerateEmbedding(ctx, services.EmbeddingText(eval))
		if err != nil {
			log.Printf("Failed to embed evaluation %s: %v", eval.ID, err)
			skipped++
			continue
		}

		if err := qdrantService.IndexEvaluation(ctx, eval.ID.String(), eval.OwnerID, eval.Title, embedding); err != nil {
			log.Printf("Failed to index evaluation %s: %v", eval.ID, err)
			skipped++
			continue
		}
		indexed++
	}

	log.Printf("Reindex complete: %d indexed, %d skipped", indexed, skipped)
}
