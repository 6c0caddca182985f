package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"
	"github.com/sirupsen/logrus"
)

// QdrantService maintains the similarity index over persisted evaluations.
// One point per evaluation, keyed by the evaluation id so re-indexing is an
// idempotent upsert.
type QdrantService interface {
	InitCollection() error
	IndexEvaluation(ctx context.Context, evalID, ownerID, title string, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, ownerID, excludeID string, limit int) ([]SimilarResult, error)
}

type SimilarResult struct {
	EvaluationID string
	Title        string
	Score        float32
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	log            *logrus.Logger
}

func NewQdrantService(urlStr, apiKey, collectionName string, log *logrus.Logger) (QdrantService, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 dimension
		log:            log,
	}, nil
}

// InitCollection implements QdrantService.
func (q *qdrantService) InitCollection() error {
	ctx := context.Background()

	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.log.WithField("collection", q.collectionName).Info("qdrant collection created")
	return nil
}

// IndexEvaluation implements QdrantService.
func (q *qdrantService) IndexEvaluation(ctx context.Context, evalID, ownerID, title string, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewIDUUID(evalID),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"evaluation_id": evalID,
			"owner_id":      ownerID,
			"title":         title,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

// SearchSimilar implements QdrantService.
func (q *qdrantService) SearchSimilar(ctx context.Context, queryEmbedding []float32, ownerID, excludeID string, limit int) ([]SimilarResult, error) {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("owner_id", ownerID),
		},
	}
	if excludeID != "" {
		filter.MustNot = []*qdrant.Condition{
			qdrant.NewMatch("evaluation_id", excludeID),
		}
	}

	searchResult, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	var results []SimilarResult
	for _, point := range searchResult {
		payload := point.Payload

		result := SimilarResult{
			Score: point.Score,
		}

		if evalID, ok := payload["evaluation_id"]; ok {
			if val, ok := evalID.GetKind().(*qdrant.Value_StringValue); ok {
				result.EvaluationID = val.StringValue
			}
		}

		if title, ok := payload["title"]; ok {
			if val, ok := title.GetKind().(*qdrant.Value_StringValue); ok {
				result.Title = val.StringValue
			}
		}

		results = append(results, result)
	}

	return results, nil
}
