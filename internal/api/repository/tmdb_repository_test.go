package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cinepulse/internal/api/config"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/sentiment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tmdbTestConfig(baseURL string) config.TMDB {
	return config.TMDB{
		APIKey:          "key",
		BaseURL:         baseURL,
		ImageBaseURL:    "https://image.tmdb.org/t/p/w500",
		SearchLocales:   []string{"pt-BR", "en-US"},
		ReviewLocales:   map[string]string{"en": "en-US", "pt": "pt-BR"},
		MinReviewLength: 10,
		HTTPTimeout:     5 * time.Second,
	}
}

func TestTMDBFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "key", q.Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search/movie":
			assert.Equal(t, "Duna", q.Get("query"))
			assert.Equal(t, "false", q.Get("include_adult"))
			if q.Get("language") == "pt-BR" {
				_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
				return
			}
			_, _ = w.Write([]byte(`{"page":1,"results":[{"id":438631,"title":"Dune","original_title":"Dune","release_date":"2021-09-15","poster_path":"/d5NXSklXo0qyIYkgV94XAgMIckC.jpg"}]}`))
		case "/movie/438631/reviews":
			if q.Get("language") == "en-US" {
				_, _ = w.Write([]byte(`{"results":[{"author":"a","content":"A stunning adaptation of the novel.","author_details":{"rating":9.0}},{"author":"b","content":"too short"}]}`))
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	src := NewTMDBRepository(tmdbTestConfig(server.URL), logger.NewNop())
	res, err := src.Fetch(context.Background(), "  Duna ")
	require.NoError(t, err)

	require.NotNil(t, res.Metadata)
	assert.Equal(t, "Dune", res.Metadata.LocalTitle)
	assert.Equal(t, "2021", res.Metadata.ReleaseYear)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/d5NXSklXo0qyIYkgV94XAgMIckC.jpg", res.Metadata.PosterURL)

	require.Len(t, res.Reviews[sentiment.English], 1)
	en := res.Reviews[sentiment.English][0]
	assert.Equal(t, "A stunning adaptation of the novel.", en.Text)
	assert.Equal(t, 5, en.Rating.Value)
	assert.Empty(t, res.Reviews[sentiment.Portuguese])
}

func TestTMDBFetchTransportErrorIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	src := NewTMDBRepository(tmdbTestConfig(server.URL), logger.NewNop())
	_, err := src.Fetch(context.Background(), "Duna")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestTMDBRetriesTransientFailures(t *testing.T) {
	var searches int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/search/movie":
			if atomic.AddInt32(&searches, 1) == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"results":[{"id":7,"title":"Duna"}]}`))
		default:
			_, _ = w.Write([]byte(`{"results":[]}`))
		}
	}))
	t.Cleanup(server.Close)

	cfg := tmdbTestConfig(server.URL)
	cfg.MaxRetries = 2
	cfg.RetryInterval = time.Millisecond
	res, err := NewTMDBRepository(cfg, logger.NewNop()).Fetch(context.Background(), "Duna")
	require.NoError(t, err)
	assert.Equal(t, "Duna", res.Metadata.LocalTitle)
	assert.Equal(t, int32(2), atomic.LoadInt32(&searches))
}

func TestTMDBDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	cfg := tmdbTestConfig(server.URL)
	cfg.SearchLocales = []string{"pt-BR"}
	cfg.MaxRetries = 3
	cfg.RetryInterval = time.Millisecond
	_, err := NewTMDBRepository(cfg, logger.NewNop()).Fetch(context.Background(), "Duna")
	assert.ErrorIs(t, err, ErrMovieNotFound)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTMDBFetchUnreachableIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	src := NewTMDBRepository(tmdbTestConfig(url), logger.NewNop())
	_, err := src.Fetch(context.Background(), "Duna")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestTMDBFetchWithoutKey(t *testing.T) {
	cfg := tmdbTestConfig("http://127.0.0.1:1")
	cfg.APIKey = ""
	_, err := NewTMDBRepository(cfg, logger.NewNop()).Fetch(context.Background(), "Duna")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestTMDBFetchEmptyTitle(t *testing.T) {
	_, err := NewTMDBRepository(tmdbTestConfig("http://127.0.0.1:1"), logger.NewNop()).Fetch(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestTMDBToRecordsKeepsOnlyStarRatings(t *testing.T) {
	zero, one, ten := 0.0, 1.0, 10.0
	src := NewTMDBRepository(tmdbTestConfig("http://127.0.0.1:1"), logger.NewNop()).(*tmdbRepository)

	records := src.toRecords([]tmdbReview{
		{Author: "a", Content: "An unrated but long review.", Details: tmdbAuthorDetails{Rating: &zero}},
		{Author: "b", Content: "A low but present rating here.", Details: tmdbAuthorDetails{Rating: &one}},
		{Author: "c", Content: "A perfect score for this one.", Details: tmdbAuthorDetails{Rating: &ten}},
	}, sentiment.English)

	require.Len(t, records, 3)
	assert.False(t, records[0].Rating.Valid)
	assert.Equal(t, 1, records[1].Rating.Value)
	assert.Equal(t, 5, records[2].Rating.Value)
}
