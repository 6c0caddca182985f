package services

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"samiksha/presentation-evaluator/internal/models"
	"samiksha/presentation-evaluator/internal/repositories"
)

// Worker indexes persisted evaluations into the similarity collection off the
// request path. Indexing is best effort: a dropped or failed job costs a
// missing neighbor in search results, never a missing evaluation.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueIndex(evalID uuid.UUID)
}

type worker struct {
	evalRepo      repositories.EvaluationRepository
	geminiService GeminiService
	qdrantService QdrantService
	jobQueue      chan uuid.UUID
	concurrency   int
	wg            sync.WaitGroup
	stopChan      chan struct{}
	log           *logrus.Logger
}

func NewWorker(
	evalRepo repositories.EvaluationRepository,
	geminiService GeminiService,
	qdrantService QdrantService,
	concurrency int,
	log *logrus.Logger,
) Worker {
	return &worker{
		evalRepo:      evalRepo,
		geminiService: geminiService,
		qdrantService: qdrantService,
		jobQueue:      make(chan uuid.UUID, 100),
		concurrency:   concurrency,
		stopChan:      make(chan struct{}),
		log:           log,
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.log.WithField("concurrency", w.concurrency).Info("starting index workers")

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements Worker.
func (w *worker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
	w.log.Info("index workers stopped")
}

// EnqueueIndex implements Worker.
func (w *worker) EnqueueIndex(evalID uuid.UUID) {
	select {
	case w.jobQueue <- evalID:
	case <-w.stopChan:
		w.log.WithField("evaluation_id", evalID).Warn("worker stopped, dropping index job")
	default:
		// Queue full. The evaluation row is already durable; skip the index.
		w.log.WithField("evaluation_id", evalID).Warn("index queue full, dropping job")
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case evalID := <-w.jobQueue:
			log := w.log.WithFields(logrus.Fields{
				"worker":        workerID,
				"evaluation_id": evalID,
			})
			if err := w.indexEvaluation(ctx, evalID); err != nil {
				log.WithError(err).Warn("failed to index evaluation")
			} else {
				log.Debug("evaluation indexed")
			}
		}
	}
}

func (w *worker) indexEvaluation(ctx context.Context, evalID uuid.UUID) error {
	evaluation, err := w.evalRepo.FindByID(evalID)
	if err != nil {
		return err
	}

	embedding, err := w.geminiService.GenerateEmbedding(ctx, EmbeddingText(evaluation))
	if err != nil {
		return err
	}

	return w.qdrantService.IndexEvaluation(ctx,
		evaluation.ID.String(),
		evaluation.OwnerID,
		evaluation.Title,
		embedding,
	)
}

// EmbeddingText is the canonical text a presentation is indexed under. Search
// uses the same projection so stored and query vectors stay comparable.
func EmbeddingText(eval *models.Evaluation) string {
	parts := []string{eval.Title, eval.Summary, eval.OverallFeedback}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}
