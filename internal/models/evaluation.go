package models

import (
	"time"

	"github.com/google/uuid"
)

// Evaluation is one persisted presentation report. Rows are written once,
// after full validation, and never updated; a failed pipeline leaves no row
// behind.
type Evaluation struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID         string           `gorm:"type:text;not null;index" json:"owner_id"`
	MediaFileID     uuid.UUID        `gorm:"type:uuid;not null" json:"media_file_id"`
	Title           string           `gorm:"type:text" json:"title"`
	Summary         string           `gorm:"type:text" json:"summary"`
	Type            PresentationType `gorm:"type:text;not null" json:"type"`
	Results         CriterionResults `gorm:"type:jsonb;not null" json:"evaluation"`
	OverallFeedback string           `gorm:"type:text" json:"overall_feedback"`
	Error           ReportError      `gorm:"embedded" json:"error"`
	CreatedAt       time.Time        `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relations
	MediaFile MediaFile `gorm:"foreignKey:MediaFileID" json:"-"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}

// Report reconstructs the validated AI payload from a persisted row.
func (e *Evaluation) Report() PresentationReport {
	return PresentationReport{
		Title:           e.Title,
		Summary:         e.Summary,
		Type:            e.Type,
		Results:         e.Results,
		OverallFeedback: e.OverallFeedback,
		Error:           e.Error,
	}
}
