package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"samiksha/presentation-evaluator/internal/models"
)

type MediaRepository interface {
	Create(media *models.MediaFile) error
	FindByID(id uuid.UUID) (*models.MediaFile, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

// Create implements MediaRepository.
func (m *mediaRepository) Create(media *models.MediaFile) error {
	if err := m.db.Create(media).Error; err != nil {
		return fmt.Errorf("failed to create media file: %w: %w", err, models.ErrPersistenceFailure)
	}
	return nil
}

// FindByID implements MediaRepository.
func (m *mediaRepository) FindByID(id uuid.UUID) (*models.MediaFile, error) {
	var media models.MediaFile
	if err := m.db.Where("id = ?", id).First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("media file %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find media file: %w: %w", err, models.ErrPersistenceFailure)
	}
	return &media, nil
}
