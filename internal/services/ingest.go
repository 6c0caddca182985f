package services

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"samiksha/presentation-evaluator/internal/models"
)

// MediaPayload is the transmissible form of an uploaded recording: its raw
// bytes plus the declared media type. The genai transport base64-encodes the
// bytes when the part goes over the wire.
type MediaPayload struct {
	Data     []byte
	MimeType string
}

type MediaIngestorService interface {
	// Ingest validates and stores an uploaded presentation and returns both
	// the payload for the AI call and the persisted file metadata.
	Ingest(file *multipart.FileHeader) (*MediaPayload, *models.MediaFile, error)
}

type mediaIngestorService struct {
	storage     StorageService
	maxFileSize int64
}

func NewMediaIngestorService(storage StorageService, maxFileSize int64) MediaIngestorService {
	return &mediaIngestorService{
		storage:     storage,
		maxFileSize: maxFileSize,
	}
}

// Ingest implements MediaIngestorService.
func (s *mediaIngestorService) Ingest(file *multipart.FileHeader) (*MediaPayload, *models.MediaFile, error) {
	if file == nil || file.Size == 0 {
		return nil, nil, models.ErrInputMissing
	}

	if file.Size > s.maxFileSize {
		return nil, nil, fmt.Errorf("file too large (%d bytes, max %d): %w",
			file.Size, s.maxFileSize, models.ErrInputMissing)
	}

	mimeType := detectMimeType(file)
	if !supportedMimeType(mimeType) {
		return nil, nil, fmt.Errorf("unsupported media type %q: %w", mimeType, models.ErrInputMissing)
	}

	src, err := file.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open upload: %w: %w", err, models.ErrInputMissing)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read upload: %w: %w", err, models.ErrInputMissing)
	}

	pageCount := 0
	if mimeType == "application/pdf" {
		// Slide decks get a readability check before we spend an AI call on them.
		pageCount, err = pdfPageCount(data)
		if err != nil {
			return nil, nil, fmt.Errorf("unreadable PDF: %w: %w", err, models.ErrInputMissing)
		}
	}

	filename, filePath, err := s.storage.SaveFile(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to store upload: %w: %w", err, models.ErrPersistenceFailure)
	}

	media := &models.MediaFile{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		MimeType:         mimeType,
		SizeBytes:        file.Size,
		PageCount:        pageCount,
		FilePath:         filePath,
		CreatedAt:        time.Now(),
	}

	payload := &MediaPayload{
		Data:     data,
		MimeType: mimeType,
	}

	return payload, media, nil
}

func detectMimeType(file *multipart.FileHeader) string {
	if ct := file.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if byExt := mime.TypeByExtension(ext); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}

func supportedMimeType(mimeType string) bool {
	if strings.HasPrefix(mimeType, "video/") || strings.HasPrefix(mimeType, "audio/") {
		return true
	}
	return mimeType == "application/pdf"
}

func pdfPageCount(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	pages := reader.NumPage()
	if pages == 0 {
		return 0, fmt.Errorf("PDF has no pages")
	}
	return pages, nil
}
