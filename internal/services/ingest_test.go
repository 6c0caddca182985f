package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"samiksha/presentation-evaluator/internal/models"
)

func TestSupportedMimeType(t *testing.T) {
	assert.True(t, supportedMimeType("video/mp4"))
	assert.True(t, supportedMimeType("video/webm"))
	assert.True(t, supportedMimeType("audio/mpeg"))
	assert.True(t, supportedMimeType("application/pdf"))

	assert.False(t, supportedMimeType("image/png"))
	assert.False(t, supportedMimeType("text/html"))
	assert.False(t, supportedMimeType("application/octet-stream"))
}

func TestDetectMimeTypePrefersHeader(t *testing.T) {
	header := &multipart.FileHeader{Filename: "talk.bin"}
	header.Header = textproto.MIMEHeader{"Content-Type": []string{"video/mp4"}}

	assert.Equal(t, "video/mp4", detectMimeType(header))
}

func TestDetectMimeTypeFallsBackToExtension(t *testing.T) {
	header := &multipart.FileHeader{Filename: "slides.pdf"}
	header.Header = textproto.MIMEHeader{}

	assert.Equal(t, "application/pdf", detectMimeType(header))
}

func TestPdfPageCountRejectsGarbage(t *testing.T) {
	_, err := pdfPageCount([]byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestIngestRejectsMissingFile(t *testing.T) {
	ingestor := NewMediaIngestorService(NewStorageService(t.TempDir()), 1024)

	_, _, err := ingestor.Ingest(nil)
	assert.ErrorIs(t, err, models.ErrInputMissing)
}

func TestIngestRejectsOversizedFile(t *testing.T) {
	ingestor := NewMediaIngestorService(NewStorageService(t.TempDir()), 16)

	file := multipartFile(t, "big.mp4", "video/mp4", bytes.Repeat([]byte("x"), 64))
	_, _, err := ingestor.Ingest(file)
	assert.ErrorIs(t, err, models.ErrInputMissing)
}

func TestIngestRejectsUnsupportedType(t *testing.T) {
	ingestor := NewMediaIngestorService(NewStorageService(t.TempDir()), 1<<20)

	file := multipartFile(t, "notes.txt", "text/plain", []byte("hello"))
	_, _, err := ingestor.Ingest(file)
	assert.ErrorIs(t, err, models.ErrInputMissing)
}

func TestIngestAcceptsVideo(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())
	ingestor := NewMediaIngestorService(storage, 1<<20)

	content := []byte("fake video bytes")
	file := multipartFile(t, "talk.mp4", "video/mp4", content)

	payload, media, err := ingestor.Ingest(file)
	require.NoError(t, err)

	assert.Equal(t, "video/mp4", payload.MimeType)
	assert.Equal(t, content, payload.Data)
	assert.Equal(t, "talk.mp4", media.OriginalFileName)
	assert.Equal(t, int64(len(content)), media.SizeBytes)
	assert.Zero(t, media.PageCount)
}

// multipartFile builds a real multipart.FileHeader the way fiber would hand
// one to the handler.
func multipartFile(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="presentation"; filename="`+filename+`"`)
	partHeader.Set("Content-Type", contentType)

	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<24))

	files := req.MultipartForm.File["presentation"]
	require.Len(t, files, 1)
	return files[0]
}
