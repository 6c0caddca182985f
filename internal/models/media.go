package models

import (
	"time"

	"github.com/google/uuid"
)

type MediaFile struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Filename         string    `gorm:"type:text" json:"filename"`
	OriginalFileName string    `gorm:"type:text" json:"original_filename"`
	MimeType         string    `gorm:"type:text" json:"mime_type"`
	SizeBytes        int64     `gorm:"type:bigint" json:"size_bytes"`
	PageCount        int       `gorm:"type:int;default:0" json:"page_count,omitempty"`
	FilePath         string    `gorm:"type:text" json:"-"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (m *MediaFile) TableName() string {
	return "media_files"
}
