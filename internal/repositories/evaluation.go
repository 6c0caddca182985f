package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"samiksha/presentation-evaluator/internal/models"
)

// EvaluationRepository is the write-once store for validated reports. There is
// deliberately no update or delete: a persisted evaluation is immutable.
type EvaluationRepository interface {
	Create(eval *models.Evaluation) error
	FindByID(id uuid.UUID) (*models.Evaluation, error)
	FindByOwner(ownerID string) ([]models.Evaluation, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(eval *models.Evaluation) error {
	if err := r.db.Create(eval).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w: %w", err, models.ErrPersistenceFailure)
	}
	return nil
}

func (r *evaluationRepository) FindByID(id uuid.UUID) (*models.Evaluation, error) {
	var eval models.Evaluation
	if err := r.db.Where("id = ?", id).First(&eval).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("evaluation %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find evaluation: %w: %w", err, models.ErrPersistenceFailure)
	}
	return &eval, nil
}

func (r *evaluationRepository) FindByOwner(ownerID string) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := r.db.
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&evals).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w: %w", err, models.ErrPersistenceFailure)
	}
	return evals, nil
}
