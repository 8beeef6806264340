package card

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(svc *Service) *chi.Mux {
	h := NewHandler(svc, 25)
	r := chi.NewRouter()
	r.Get("/cards", h.List)
	r.Get("/categories", h.Categories)
	r.Post("/cards", h.Create)
	r.Delete("/cards/{id}", h.Delete)
	return r
}

func multipartBody(t *testing.T, image io.Reader, prompt, category string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if image != nil {
		fw, err := w.CreateFormFile("image", "upload.png")
		require.NoError(t, err)
		_, err = io.Copy(fw, image)
		require.NoError(t, err)
	}
	if prompt != "" {
		require.NoError(t, w.WriteField("prompt", prompt))
	}
	if category != "" {
		require.NoError(t, w.WriteField("category", category))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func decodeEnvelope(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestHandlerCreateAndList(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	router := newTestRouter(svc)

	body, contentType := multipartBody(t, testImage(t), "a warrior", "Leo")
	req := httptest.NewRequest(http.MethodPost, "/cards", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeEnvelope(t, rec.Body)
	assert.Equal(t, true, created["success"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards?category=Leo", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	listed := decodeEnvelope(t, rec.Body)
	cards, ok := listed["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, cards, 1)
}

func TestHandlerCreateMissingPrompt(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	router := newTestRouter(svc)

	body, contentType := multipartBody(t, testImage(t), "", "")
	req := httptest.NewRequest(http.MethodPost, "/cards", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerCreateUndecodableImage(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	router := newTestRouter(svc)

	body, contentType := multipartBody(t, bytes.NewReader([]byte("junk")), "prompt", "")
	req := httptest.NewRequest(http.MethodPost, "/cards", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerDeleteUnknown(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cards/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerDeleteSilentRefusal(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	router := newTestRouter(svc)

	created, err := svc.Ingest(context.Background(), testImage(t), "prompt", "")
	require.NoError(t, err)

	store.denyDelete = true

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cards/"+created.ID, nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Len(t, svc.Cards(""), 1)
}

func TestHandlerDeleteCleanupWarning(t *testing.T) {
	svc, _, objects, _ := newTestService(t)
	router := newTestRouter(svc)

	created, err := svc.Ingest(context.Background(), testImage(t), "prompt", "")
	require.NoError(t, err)

	objects.removeErr = assert.AnError

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cards/"+created.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body)
	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["deleted"])
	assert.NotEmpty(t, data["warning"])
}

func TestHandlerCategories(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	router := newTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec.Body)
	labels, ok := envelope["data"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, "GOAT", labels[0])
	assert.Len(t, labels, len(DefaultCategories))
}
