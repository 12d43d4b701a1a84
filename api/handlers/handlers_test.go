package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankoehn/ai-content-writer/api/router"
	"github.com/ankoehn/ai-content-writer/dto"
	"github.com/ankoehn/ai-content-writer/generator"
	"github.com/ankoehn/ai-content-writer/history"
	"github.com/ankoehn/ai-content-writer/models"
	"github.com/ankoehn/ai-content-writer/services"
)

type stubEngine struct {
	err error
}

func (s *stubEngine) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []models.SearchResult{{Title: "E-bike trends", Content: "..."}}, nil
}

type stubClient struct {
	err error
}

func (s *stubClient) Complete(ctx context.Context, system, user string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "generated text", nil
}

func newTestRouter(t *testing.T, engine *stubEngine, client *stubClient) (*gin.Engine, *history.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := history.NewStore(filepath.Join(t.TempDir(), "content.json"))
	gen := generator.New(engine, client, store)
	svc := services.NewContentService(gen, store)
	return router.New(svc), store
}

func postContent(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contents", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() dto.GenerateContentRequestDTO {
	return dto.GenerateContentRequestDTO{
		Campaign:       "Launch",
		ContentSubject: "electric bikes",
		TargetAudience: "urban commuters",
	}
}

func TestGenerateContentEndpoint(t *testing.T) {
	r, store := newTestRouter(t, &stubEngine{}, &stubClient{})

	w := postContent(t, r, validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var got dto.ContentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Launch", got.Campaign)
	assert.Equal(t, "generated text", got.BlogContent)
	assert.Equal(t, "generated text", got.LinkedInContent)
	assert.Equal(t, "generated text", got.XContent)
	assert.NotEmpty(t, got.ID)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestGenerateContentValidationError(t *testing.T) {
	r, store := newTestRouter(t, &stubEngine{}, &stubClient{})

	body := validBody()
	body.TargetAudience = ""
	w := postContent(t, r, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION", resp.Code)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGenerateContentSearchFailure(t *testing.T) {
	r, store := newTestRouter(t, &stubEngine{err: errors.New("tavily down")}, &stubClient{})

	w := postContent(t, r, validBody())

	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SEARCH", resp.Code)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGenerateContentGenerationFailure(t *testing.T) {
	r, store := newTestRouter(t, &stubEngine{}, &stubClient{err: errors.New("provider unavailable")})

	w := postContent(t, r, validBody())

	require.Equal(t, http.StatusBadGateway, w.Code)
	var resp dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "GENERATION", resp.Code)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListAndGetContent(t *testing.T) {
	r, _ := newTestRouter(t, &stubEngine{}, &stubClient{})

	w := postContent(t, r, validBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.ContentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	listW := httptest.NewRecorder()
	r.ServeHTTP(listW, httptest.NewRequest(http.MethodGet, "/api/v1/contents", nil))
	require.Equal(t, http.StatusOK, listW.Code)
	var items []dto.ContentDTO
	require.NoError(t, json.Unmarshal(listW.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)

	getW := httptest.NewRecorder()
	r.ServeHTTP(getW, httptest.NewRequest(http.MethodGet, "/api/v1/contents/"+created.ID, nil))
	require.Equal(t, http.StatusOK, getW.Code)

	missW := httptest.NewRecorder()
	r.ServeHTTP(missW, httptest.NewRequest(http.MethodGet, "/api/v1/contents/19990101000000", nil))
	assert.Equal(t, http.StatusNotFound, missW.Code)
}

func TestDeleteContent(t *testing.T) {
	r, store := newTestRouter(t, &stubEngine{}, &stubClient{})

	w := postContent(t, r, validBody())
	require.Equal(t, http.StatusCreated, w.Code)
	var created dto.ContentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	delW := httptest.NewRecorder()
	r.ServeHTTP(delW, httptest.NewRequest(http.MethodDelete, "/api/v1/contents/"+created.ID, nil))
	require.Equal(t, http.StatusOK, delW.Code)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)

	againW := httptest.NewRecorder()
	r.ServeHTTP(againW, httptest.NewRequest(http.MethodDelete, "/api/v1/contents/"+created.ID, nil))
	assert.Equal(t, http.StatusNotFound, againW.Code)
}

func TestExportEmptyHistory(t *testing.T) {
	r, _ := newTestRouter(t, &stubEngine{}, &stubClient{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/contents/export", nil))

	require.Equal(t, http.StatusConflict, w.Code)
	var resp dto.ErrorResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "EXPORT_EMPTY", resp.Code)
}

func TestExportWithRecords(t *testing.T) {
	r, _ := newTestRouter(t, &stubEngine{}, &stubClient{})

	w := postContent(t, r, validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	expW := httptest.NewRecorder()
	r.ServeHTTP(expW, httptest.NewRequest(http.MethodGet, "/api/v1/contents/export", nil))

	require.Equal(t, http.StatusOK, expW.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		expW.Header().Get("Content-Type"))
	assert.Contains(t, expW.Header().Get("Content-Disposition"), "content_export_")
	assert.NotEmpty(t, expW.Body.Bytes())
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestRouter(t, &stubEngine{}, &stubClient{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
