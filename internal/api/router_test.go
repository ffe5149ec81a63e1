package api_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pawmatch/internal/api"
	"github.com/your-org/pawmatch/internal/matching"
	"github.com/your-org/pawmatch/internal/store"
	"github.com/your-org/pawmatch/internal/vision"
	"github.com/your-org/pawmatch/pkg/dto"
)

func newTestRouter(t *testing.T, apiKey string) http.Handler {
	t.Helper()
	s := store.New(store.SeedPets())
	return api.NewRouter(api.RouterConfig{
		APIKey:        apiKey,
		Store:         s,
		Finder:        matching.NewFinder(s),
		Extractor:     vision.NewExtractor(nil, vision.NewMockProvider(1)),
		MinSimilarity: matching.DefaultMinSimilarity,
	})
}

func doRequest(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t, "")

	w := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadyzWithoutBackends(t *testing.T) {
	r := newTestRouter(t, "")

	w := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyRequired(t *testing.T) {
	r := newTestRouter(t, "sekret")

	w := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/pets", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/pets", nil)
	req.Header.Set("X-API-Key", "wrong")
	w = doRequest(t, r, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/pets", nil)
	req.Header.Set("X-API-Key", "sekret")
	w = doRequest(t, r, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListPets(t *testing.T) {
	r := newTestRouter(t, "")

	w := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/pets", nil))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.PetListResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 8, resp.Total)
}

func TestListPetsFilters(t *testing.T) {
	r := newTestRouter(t, "")

	w := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/pets?status=lost", nil))
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.PetListResponse](t, w)
	require.Equal(t, 3, resp.Total)
	for _, p := range resp.Pets {
		assert.Equal(t, "lost", p.Status)
	}

	w = doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/pets?type=cat&status=found", nil))
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[dto.PetListResponse](t, w)
	assert.Equal(t, 2, resp.Total)

	w = doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/pets?query=luna", nil))
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[dto.PetListResponse](t, w)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Luna", resp.Pets[0].Name)
}

func TestGetPet(t *testing.T) {
	r := newTestRouter(t, "")

	w := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/pets/3", nil))
	require.Equal(t, http.StatusOK, w.Code)
	pet := decode[dto.PetResponse](t, w)
	assert.Equal(t, "Rocky", pet.Name)

	w = doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/pets/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFindMatches(t *testing.T) {
	r := newTestRouter(t, "")

	w := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/matches?petId=1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.MatchListResponse](t, w)
	assert.True(t, resp.Success)
	require.Equal(t, 2, resp.Total)

	assert.Equal(t, "6", resp.Matches[0].FoundPet.ID)
	assert.Equal(t, 100, resp.Matches[0].Similarity)
	assert.Equal(t, "high", resp.Matches[0].Confidence)

	assert.Equal(t, "4", resp.Matches[1].FoundPet.ID)
	assert.Equal(t, 75, resp.Matches[1].Similarity)
	assert.Equal(t, "medium", resp.Matches[1].Confidence)
}

func TestFindMatchesCustomThreshold(t *testing.T) {
	r := newTestRouter(t, "")

	w := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/matches?petId=1&minSimilarity=80", nil))
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.MatchListResponse](t, w)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "6", resp.Matches[0].FoundPet.ID)
}

func TestFindMatchesValidation(t *testing.T) {
	r := newTestRouter(t, "")

	w := doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/matches", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/matches?petId=1&minSimilarity=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, httptest.NewRequest(http.MethodGet, "/v1/matches?petId=999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func multipartImage(t *testing.T, fields ...string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, field := range fields {
		part, err := writer.CreateFormFile(field, field+".jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("not-a-real-jpeg"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestAnalyzeImageFallsBackToMock(t *testing.T) {
	r := newTestRouter(t, "")

	body, contentType := multipartImage(t, "image")
	req := httptest.NewRequest(http.MethodPost, "/v1/images/analyze", body)
	req.Header.Set("Content-Type", contentType)

	w := doRequest(t, r, req)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.AnalyzeResponse](t, w)
	assert.True(t, resp.Success)
	assert.True(t, resp.IsMockData)
	assert.NotEmpty(t, resp.Features.Breed)
	assert.Greater(t, resp.Features.Confidence, 0.0)
	assert.Empty(t, resp.ImageKey)
}

func TestAnalyzeImageMissingFile(t *testing.T) {
	r := newTestRouter(t, "")

	body, contentType := multipartImage(t, "wrongfield")
	req := httptest.NewRequest(http.MethodPost, "/v1/images/analyze", body)
	req.Header.Set("Content-Type", contentType)

	w := doRequest(t, r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompareImages(t *testing.T) {
	r := newTestRouter(t, "")

	body, contentType := multipartImage(t, "image1", "image2")
	req := httptest.NewRequest(http.MethodPost, "/v1/images/compare", body)
	req.Header.Set("Content-Type", contentType)

	w := doRequest(t, r, req)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[dto.CompareResponse](t, w)
	assert.True(t, resp.Success)
	assert.GreaterOrEqual(t, resp.Similarity, 0.0)
	assert.LessOrEqual(t, resp.Similarity, 100.0)
}

func TestCompareImagesMissingSecondFile(t *testing.T) {
	r := newTestRouter(t, "")

	body, contentType := multipartImage(t, "image1")
	req := httptest.NewRequest(http.MethodPost, "/v1/images/compare", body)
	req.Header.Set("Content-Type", contentType)

	w := doRequest(t, r, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
