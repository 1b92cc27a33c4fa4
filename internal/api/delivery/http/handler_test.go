package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"cinepulse/internal/api/dto"
	"cinepulse/internal/api/repository"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAnalysisService struct {
	mock.Mock
}

func (m *mockAnalysisService) Analyze(ctx context.Context, title string) (*dto.AnalysisResponse, error) {
	args := m.Called(ctx, title)
	resp, _ := args.Get(0).(*dto.AnalysisResponse)
	return resp, args.Error(1)
}

type mockReviewService struct {
	mock.Mock
}

func (m *mockReviewService) ListReviews(ctx context.Context, query dto.ListReviewsQuery) (*dto.ReviewListResponse, error) {
	args := m.Called(ctx, query)
	resp, _ := args.Get(0).(*dto.ReviewListResponse)
	return resp, args.Error(1)
}

func (m *mockReviewService) GetReview(ctx context.Context, id string) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*dto.ReviewResponse)
	return resp, args.Error(1)
}

func (m *mockReviewService) CreateReview(ctx context.Context, req *dto.ReviewPayload) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.ReviewResponse)
	return resp, args.Error(1)
}

func (m *mockReviewService) UpdateReview(ctx context.Context, id string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, id, req)
	resp, _ := args.Get(0).(*dto.ReviewResponse)
	return resp, args.Error(1)
}

func (m *mockReviewService) DeleteReview(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReviewService) ListMovies(ctx context.Context) ([]dto.MovieEntry, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]dto.MovieEntry)
	return movies, args.Error(1)
}

func (m *mockReviewService) Stats(ctx context.Context) (*dto.DatasetStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*dto.DatasetStats)
	return stats, args.Error(1)
}

func (m *mockReviewService) WarmCache(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockSummaryService struct {
	mock.Mock
}

func (m *mockSummaryService) Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.SummarizeResponse)
	return resp, args.Error(1)
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (l stubLimiter) Allow(context.Context, string) (bool, error) {
	return l.allowed, l.err
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeHandler(t *testing.T) {
	svc := new(mockAnalysisService)
	svc.On("Analyze", mock.Anything, "Duna").Return(&dto.AnalysisResponse{
		FilmeBuscado:        "Duna",
		AnaliseQuantitativa: dto.QuantitativeAnalysis{Positivos: 3, NotaMedia: 100},
		AnaliseQualitativa:  dto.SummaryResult{Status: dto.SummaryUnavailable, Message: dto.MessageUnavailable},
	}, nil)

	e := newTestEcho()
	NewAnalysisHandler(svc, logger.NewNop()).RegisterRoutes(e.Group(""))

	rec := serve(e, http.MethodPost, "/analisar", `{"filme":"Duna"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"positivos":3`)
	assert.Contains(t, rec.Body.String(), `"analise_qualitativa":"O sistema de IA está indisponível no momento."`)
}

func TestAnalyzeHandlerNotFound(t *testing.T) {
	svc := new(mockAnalysisService)
	svc.On("Analyze", mock.Anything, "???").Return(nil, repository.ErrMovieNotFound)

	e := newTestEcho()
	NewAnalysisHandler(svc, logger.NewNop()).RegisterRoutes(e.Group(""))

	rec := serve(e, http.MethodPost, "/analisar", `{"filme":"???"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Filme não encontrado."}`, rec.Body.String())
}

func TestAnalyzeHandlerRequiresTitle(t *testing.T) {
	svc := new(mockAnalysisService)
	e := newTestEcho()
	NewAnalysisHandler(svc, logger.NewNop()).RegisterRoutes(e.Group(""))

	rec := serve(e, http.MethodPost, "/analisar", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
}

func TestRateLimitMiddleware(t *testing.T) {
	svc := new(mockAnalysisService)
	svc.On("Analyze", mock.Anything, "Duna").Return(&dto.AnalysisResponse{FilmeBuscado: "Duna"}, nil)

	e := newTestEcho()
	NewAnalysisHandler(svc, logger.NewNop()).RegisterRoutes(e.Group(""), RateLimit(stubLimiter{allowed: false}, logger.NewNop()))
	rec := serve(e, http.MethodPost, "/analisar", `{"filme":"Duna"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	e = newTestEcho()
	NewAnalysisHandler(svc, logger.NewNop()).RegisterRoutes(e.Group(""), RateLimit(stubLimiter{err: errors.New("redis down")}, logger.NewNop()))
	rec = serve(e, http.MethodPost, "/analisar", `{"filme":"Duna"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReviewRoutes(t *testing.T) {
	svc := new(mockReviewService)
	svc.On("ListReviews", mock.Anything, dto.ListReviewsQuery{Movie: "Dune", Sentiment: "positivo", Page: 2, PageSize: 5}).
		Return(&dto.ReviewListResponse{Items: []*dto.ReviewResponse{{ReviewID: "rw1"}}, Total: 6, Page: 2, PageSize: 5}, nil)
	svc.On("GetReview", mock.Anything, "missing").Return(nil, repository.ErrReviewNotFound)
	svc.On("GetReview", mock.Anything, "rw1").Return(&dto.ReviewResponse{ReviewID: "rw1", Movie: "Dune"}, nil)
	svc.On("CreateReview", mock.Anything, mock.MatchedBy(func(r *dto.ReviewPayload) bool { return r.Movie == "Dune" })).
		Return(&dto.ReviewResponse{ReviewID: "new", Movie: "Dune"}, nil)
	svc.On("UpdateReview", mock.Anything, "rw1", mock.Anything).Return(&dto.ReviewResponse{ReviewID: "rw1", Reviewer: "bia"}, nil)
	svc.On("DeleteReview", mock.Anything, "rw1").Return(nil)
	svc.On("DeleteReview", mock.Anything, "missing").Return(repository.ErrReviewNotFound)

	e := newTestEcho()
	NewReviewHandler(svc, logger.NewNop()).RegisterRoutes(e.Group("/api/reviews"))

	rec := serve(e, http.MethodGet, "/api/reviews?movie=Dune&sentiment=positivo&page=2&page_size=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":6`)

	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/api/reviews/missing", "").Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/api/reviews/rw1", "").Code)
	assert.Equal(t, http.StatusCreated, serve(e, http.MethodPost, "/api/reviews", `{"movie":"Dune","rating":"7"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodPost, "/api/reviews", `{"reviewer":"ana"}`).Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodPut, "/api/reviews/rw1", `{"reviewer":"bia"}`).Code)
	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodDelete, "/api/reviews/rw1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodDelete, "/api/reviews/missing", "").Code)
}

func TestCatalogueRoutes(t *testing.T) {
	svc := new(mockReviewService)
	svc.On("ListMovies", mock.Anything).Return([]dto.MovieEntry{{Movie: "Dune", ReviewCount: 2}}, nil)
	svc.On("Stats", mock.Anything).Return(nil, errors.New("db down"))

	e := newTestEcho()
	NewReviewHandler(svc, logger.NewNop()).RegisterCatalogueRoutes(e.Group("/api"))

	rec := serve(e, http.MethodGet, "/api/movies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"movie":"Dune","review_count":2,"avg_rating":0}]`, rec.Body.String())
	assert.Equal(t, http.StatusInternalServerError, serve(e, http.MethodGet, "/api/stats", "").Code)
}

func TestSummarizeHandler(t *testing.T) {
	svc := new(mockSummaryService)
	svc.On("Summarize", mock.Anything, mock.MatchedBy(func(r *dto.SummarizeRequest) bool { return r.MovieTitle == "Dune" })).
		Return(&dto.SummarizeResponse{
			Summary:  dto.SummaryResult{Status: dto.SummaryFallback, Fallback: &dto.FallbackAnalysis{ResumoExecutivo: "texto", Error: dto.FallbackErrorMarker}},
			Metadata: dto.SummaryMetadata{Movie: "Dune", ReviewsAnalyzed: 2},
		}, nil)
	svc.On("Summarize", mock.Anything, mock.MatchedBy(func(r *dto.SummarizeRequest) bool { return r.MovieTitle == "Nada" })).
		Return(nil, repository.ErrMovieNotFound)

	e := newTestEcho()
	NewSummaryHandler(svc, "", logger.NewNop()).RegisterRoutes(e.Group("/api"))

	rec := serve(e, http.MethodPost, "/api/summarize", `{"movie_title":"Dune","analysis_params":{"limit":10}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Failed to parse structured analysis"`)

	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodPost, "/api/summarize", `{"movie_title":"Nada"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodPost, "/api/summarize", `{"reviews":[]}`).Code)
}

func TestTestEnvHandler(t *testing.T) {
	e := newTestEcho()
	NewSummaryHandler(new(mockSummaryService), "AIzaSyExample", logger.NewNop()).RegisterRoutes(e.Group("/api"))

	rec := serve(e, http.MethodGet, "/api/test-env", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"gemini_api_key_set":true,"gemini_api_key_prefix":"AIzaS"}`, rec.Body.String())
}

func TestStaticHandler(t *testing.T) {
	assets := fstest.MapFS{
		"index.html":    {Data: []byte("<html>CinePulse</html>")},
		"static/app.js": {Data: []byte("console.log('ok')")},
	}
	e := newTestEcho()
	NewStaticHandler(assets).RegisterRoutes(e)

	rec := serve(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CinePulse")

	rec = serve(e, http.MethodGet, "/static/app.js", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")
}
