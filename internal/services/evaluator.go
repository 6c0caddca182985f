package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"samiksha/presentation-evaluator/internal/models"
	"samiksha/presentation-evaluator/internal/repositories"
)

// EvaluatorService runs one full evaluation: ingest, compose, call, assemble,
// parse, score, persist. A request either produces a fully validated row or
// no row at all; the only exception is a self-reported model error, which is
// persisted for audit but never scored.
type EvaluatorService interface {
	EvaluatePresentation(ctx context.Context, file *multipart.FileHeader, ownerID string) (*models.Evaluation, *int, error)
}

type evaluatorService struct {
	ingestor       MediaIngestorService
	mediaRepo      repositories.MediaRepository
	evalRepo       repositories.EvaluationRepository
	geminiService  GeminiService
	parser         EvaluationParser
	scorer         ScorerService
	indexer        Worker
	requestTimeout time.Duration
	log            *logrus.Logger
}

func NewEvaluatorService(
	ingestor MediaIngestorService,
	mediaRepo repositories.MediaRepository,
	evalRepo repositories.EvaluationRepository,
	geminiService GeminiService,
	parser EvaluationParser,
	scorer ScorerService,
	indexer Worker,
	requestTimeout time.Duration,
	log *logrus.Logger,
) EvaluatorService {
	return &evaluatorService{
		ingestor:       ingestor,
		mediaRepo:      mediaRepo,
		evalRepo:       evalRepo,
		geminiService:  geminiService,
		parser:         parser,
		scorer:         scorer,
		indexer:        indexer,
		requestTimeout: requestTimeout,
		log:            log,
	}
}

// EvaluatePresentation implements EvaluatorService.
func (e *evaluatorService) EvaluatePresentation(ctx context.Context, file *multipart.FileHeader, ownerID string) (*models.Evaluation, *int, error) {
	payload, media, err := e.ingestor.Ingest(file)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest failed: %w", err)
	}

	if err := e.mediaRepo.Create(media); err != nil {
		return nil, nil, err
	}

	log := e.log.WithFields(logrus.Fields{
		"owner_id": ownerID,
		"media_id": media.ID,
	})
	log.Info("starting presentation evaluation")

	callCtx, cancel := context.WithTimeout(ctx, e.requestTimeout)
	defer cancel()

	raw, err := e.geminiService.EvaluateMedia(callCtx, payload)
	if err != nil {
		return nil, nil, err
	}

	report, err := e.parser.Parse(raw)
	if err != nil {
		log.WithError(err).Warn("evaluation response rejected")
		return nil, nil, err
	}

	var overall *int
	if score, err := e.scorer.OverallScore(report); err == nil {
		overall = &score
	} else if !errors.Is(err, models.ErrSelfReported) {
		// A structurally valid report that still cannot be scored is a
		// contract breach, not an audit case. Nothing gets persisted.
		return nil, nil, err
	}

	evaluation := &models.Evaluation{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		MediaFileID:     media.ID,
		Title:           report.Title,
		Summary:         report.Summary,
		Type:            report.Type,
		Results:         report.Results,
		OverallFeedback: report.OverallFeedback,
		Error:           report.Error,
		CreatedAt:       time.Now(),
	}

	if err := e.evalRepo.Create(evaluation); err != nil {
		return nil, nil, err
	}

	if overall != nil {
		// Indexing is best effort and must not delay the response.
		e.indexer.EnqueueIndex(evaluation.ID)
		log.WithFields(logrus.Fields{
			"evaluation_id": evaluation.ID,
			"type":          evaluation.Type,
			"overall_score": *overall,
		}).Info("evaluation persisted")
	} else {
		log.WithFields(logrus.Fields{
			"evaluation_id": evaluation.ID,
			"message":       report.Error.Message,
		}).Warn("model reported input as unusable; persisted for audit")
	}

	return evaluation, overall, nil
}
