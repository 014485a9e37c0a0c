package controller

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"testing"

	"eduguide_backend/internal/service"
	"eduguide_backend/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertUploadDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadSummary_Success(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)
	env.mock.AddResponse(llm.MockResponse{Content: mustJSON(t, service.SamplePaperSummary())})

	w := env.upload(t, "file", "paper.txt", []byte("We study transformers."))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.NotEmpty(t, body["paper_summary"])
	cards, ok := body["flashcards"].([]any)
	require.True(t, ok)
	assert.GreaterOrEqual(t, len(cards), service.PaperFlashcardsMin)
	assert.NotContains(t, body, "archive_url")

	assertUploadDirEmpty(t, env.uploadDir)
}

func TestUploadSummary_MissingFile(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)

	w := env.upload(t, "", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file part in the request", decode(t, w)["error"])
	assert.Zero(t, env.mock.CallCount())
}

func TestUploadSummary_InvalidType(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)

	w := env.upload(t, "file", "slides.docx", []byte("content"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid file or file type.", decode(t, w)["error"])
	assertUploadDirEmpty(t, env.uploadDir)
}

func TestUploadSummary_EmptyContent(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 1024)

	w := env.upload(t, "file", "blank.txt", []byte("   \n"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, env.mock.CallCount())
	assertUploadDirEmpty(t, env.uploadDir)
}

func TestUploadSummary_TooLarge(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(), 16)

	w := env.upload(t, "file", "big.txt", bytes.Repeat([]byte("a"), 64))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Zero(t, env.mock.CallCount())
	assertUploadDirEmpty(t, env.uploadDir)
}

func TestUploadSummary_GenerationFailure(t *testing.T) {
	env := newTestEnv(t, llm.NewMockProvider(llm.MockResponse{Err: errors.New("provider down")}), 1024)

	w := env.upload(t, "file", "paper.pdf", []byte("%PDF-1.4"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "AI generation failed", decode(t, w)["error"])
	assertUploadDirEmpty(t, env.uploadDir)
}
