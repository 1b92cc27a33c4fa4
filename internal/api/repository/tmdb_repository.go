package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"cinepulse/internal/api/config"
	"cinepulse/internal/api/dto"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/sentiment"
	"cinepulse/pkg/utils"

	"github.com/cenkalti/backoff/v4"
)

type tmdbMovie struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	OriginalTitle string `json:"original_title"`
	ReleaseDate   string `json:"release_date"`
	PosterPath    string `json:"poster_path"`
}

type tmdbSearchResponse struct {
	Page    int         `json:"page"`
	Results []tmdbMovie `json:"results"`
}

type tmdbAuthorDetails struct {
	Rating *float64 `json:"rating"`
}

type tmdbReview struct {
	Author  string            `json:"author"`
	Content string            `json:"content"`
	Created string            `json:"created_at"`
	Details tmdbAuthorDetails `json:"author_details"`
}

type tmdbReviewsResponse struct {
	Results []tmdbReview `json:"results"`
}

type tmdbRepository struct {
	cfg    config.TMDB
	client *http.Client
	logger *logger.Logger
}

// NewTMDBRepository creates a review source backed by The Movie Database API.
func NewTMDBRepository(cfg config.TMDB, log *logger.Logger) ReviewSource {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &tmdbRepository{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
		logger: log,
	}
}

func (r *tmdbRepository) Name() string {
	return "tmdb"
}

// Fetch resolves the title trying each search locale in order, then collects
// reviews per language. Failures while fetching one language leave that
// language empty.
func (r *tmdbRepository) Fetch(ctx context.Context, title string) (*dto.SourceResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrMovieNotFound
	}
	if strings.TrimSpace(r.cfg.APIKey) == "" {
		return nil, fmt.Errorf("tmdb api key not configured: %w", ErrMovieNotFound)
	}

	var movie *tmdbMovie
	for _, locale := range r.cfg.SearchLocales {
		m, err := r.search(ctx, title, locale)
		if err != nil {
			r.logger.Warn("TMDB search failed",
				logger.StringField("title", title),
				logger.StringField("locale", locale),
				logger.ErrorField(err))
			continue
		}
		if m != nil {
			movie = m
			break
		}
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	result := &dto.SourceResult{
		Reviews:  make(map[dto.Language][]dto.ReviewRecord, len(sentiment.Languages)),
		Metadata: r.metadata(movie),
	}
	for _, lang := range sentiment.Languages {
		locale, ok := r.cfg.ReviewLocales[string(lang)]
		if !ok {
			continue
		}
		reviews, err := r.reviewsByID(ctx, movie.ID, locale)
		if err != nil {
			r.logger.Warn("TMDB reviews unavailable for language",
				logger.Field("movie_id", movie.ID),
				logger.StringField("locale", locale),
				logger.ErrorField(err))
			result.Reviews[lang] = []dto.ReviewRecord{}
			continue
		}
		result.Reviews[lang] = r.toRecords(reviews, lang)
	}
	return result, nil
}

func (r *tmdbRepository) search(ctx context.Context, title, locale string) (*tmdbMovie, error) {
	params := url.Values{}
	params.Set("api_key", r.cfg.APIKey)
	params.Set("query", title)
	params.Set("language", locale)
	params.Set("page", "1")
	params.Set("include_adult", "false")

	var payload tmdbSearchResponse
	if err := r.get(ctx, "/search/movie", params, &payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, nil
	}
	return &payload.Results[0], nil
}

func (r *tmdbRepository) reviewsByID(ctx context.Context, id int64, locale string) ([]tmdbReview, error) {
	params := url.Values{}
	params.Set("api_key", r.cfg.APIKey)
	params.Set("language", locale)
	params.Set("page", "1")

	var payload tmdbReviewsResponse
	if err := r.get(ctx, "/movie/"+strconv.FormatInt(id, 10)+"/reviews", params, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

func (r *tmdbRepository) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint, err := url.Parse(r.cfg.BaseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	endpoint.RawQuery = params.Encode()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.cfg.RetryInterval
	bo.MaxElapsedTime = r.cfg.HTTPTimeout

	attempt := 0
	operation := func() error {
		attempt++
		return r.do(ctx, endpoint.String(), path, out)
	}
	notify := func(err error, wait time.Duration) {
		r.logger.Debug("Retrying TMDB request",
			logger.StringField("path", path),
			logger.IntField("attempt", attempt),
			logger.Field("wait", wait),
			logger.ErrorField(err))
	}

	policy := backoff.WithMaxRetries(bo, uint64(r.cfg.MaxRetries))
	return backoff.RetryNotify(operation, backoff.WithContext(policy, ctx), notify)
}

// do runs one GET. Only transport failures, 429 and 5xx answers are retryable.
func (r *tmdbRepository) do(ctx context.Context, endpoint, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("build request: %w", err))
	}

	requestStart := time.Now()
	resp, err := r.client.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("tmdb %s returned %d (latency=%v)", path, resp.StatusCode, latency)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			return statusErr
		}
		return backoff.Permanent(statusErr)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return backoff.Permanent(fmt.Errorf("decode tmdb response: %w", err))
	}
	return nil
}

func (r *tmdbRepository) metadata(m *tmdbMovie) *dto.MovieMetadata {
	meta := &dto.MovieMetadata{
		LocalTitle:    m.Title,
		OriginalTitle: m.OriginalTitle,
	}
	if m.ReleaseDate != "" {
		meta.ReleaseYear = utils.FirstRunes(m.ReleaseDate, 4)
	}
	if m.PosterPath != "" {
		meta.PosterURL = strings.TrimRight(r.cfg.ImageBaseURL, "/") + m.PosterPath
	}
	return meta
}

func (r *tmdbRepository) toRecords(reviews []tmdbReview, lang dto.Language) []dto.ReviewRecord {
	records := make([]dto.ReviewRecord, 0, len(reviews))
	for _, rv := range reviews {
		text := strings.TrimSpace(rv.Content)
		if utf8.RuneCountInString(text) <= r.cfg.MinReviewLength {
			continue
		}
		rec := dto.ReviewRecord{
			Text:     text,
			Language: lang,
			Reviewer: rv.Author,
			Date:     rv.Created,
		}
		// TMDB author ratings are on a 0-10 scale; 0 means unrated.
		if rv.Details.Rating != nil {
			if stars := int(*rv.Details.Rating/2 + 0.5); stars >= 1 && stars <= 5 {
				rec.Rating = dto.IntOf(stars)
			}
		}
		records = append(records, rec)
	}
	return records
}
