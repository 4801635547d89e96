package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seimon-ohh/ebay-kleinanzeigen-api/models"
	"github.com/seimon-ohh/ebay-kleinanzeigen-api/scraper"
)

// stubProvider satisfies scraper.PageProvider without a browser. The fake
// extractors never touch the page, so a nil page is fine.
type stubProvider struct {
	acquireErr error
	released   int
}

func (s *stubProvider) AcquirePage() (scraper.Page, error) {
	return nil, s.acquireErr
}

func (s *stubProvider) ReleasePage(scraper.Page) {
	s.released++
}

// stubExtractor returns canned results per URL.
type stubExtractor struct {
	results map[string]*models.AdDetail
	calls   []string
}

func (s *stubExtractor) Extract(_ context.Context, _ scraper.Page, url string) (*models.AdDetail, error) {
	s.calls = append(s.calls, url)
	if ad, ok := s.results[url]; ok {
		return ad, nil
	}
	return nil, errors.New("navigation failed")
}

func performDetailRequest(t *testing.T, provider scraper.PageProvider, ex DetailExtractor, id string) (*httptest.ResponseRecorder, models.DetailResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/inserat/:id", Inserat(provider, ex))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/inserat/"+id, nil)
	r.ServeHTTP(w, req)

	var resp models.DetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestInserat_CanonicalScheme(t *testing.T) {
	provider := &stubProvider{}
	urls := scraper.DetailURLs("12345")
	ex := &stubExtractor{results: map[string]*models.AdDetail{
		urls[0]: {ID: "12345", Title: "Profi-Kamera"},
	}}

	w, resp := performDetailRequest(t, provider, ex, "12345")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "12345", resp.Data.ID)
	assert.Equal(t, []string{urls[0]}, ex.calls)
	assert.Equal(t, 1, provider.released)
}

func TestInserat_AlternateSchemeFallback(t *testing.T) {
	provider := &stubProvider{}
	urls := scraper.DetailURLs("12345")
	ex := &stubExtractor{results: map[string]*models.AdDetail{
		urls[1]: {ID: "12345"},
	}}

	w, resp := performDetailRequest(t, provider, ex, "12345")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{urls[0], urls[1]}, ex.calls)
}

func TestInserat_BothSchemesFailIsNotFound(t *testing.T) {
	provider := &stubProvider{}
	ex := &stubExtractor{}

	w, resp := performDetailRequest(t, provider, ex, "12345")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, models.ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, 1, provider.released, "page must be released on failure")
}

func TestInserat_AcquireFailureIsServerError(t *testing.T) {
	provider := &stubProvider{
		acquireErr: models.NewScrapeError(models.ErrCodeBrowserCrash, "pool exhausted", nil),
	}

	w, resp := performDetailRequest(t, provider, &stubExtractor{}, "12345")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, models.ErrCodeBrowserCrash, resp.Error.Code)
	assert.Equal(t, 0, provider.released)
}
