package repository

import (
	"context"
	"errors"
	"testing"

	"cinepulse/internal/api/dto"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/sentiment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	name   string
	result *dto.SourceResult
	err    error
}

func (s stubSource) Name() string { return s.name }

func (s stubSource) Fetch(context.Context, string) (*dto.SourceResult, error) {
	return s.result, s.err
}

func TestCompositeSourceMerges(t *testing.T) {
	tmdb := stubSource{name: "tmdb", result: &dto.SourceResult{
		Reviews: map[dto.Language][]dto.ReviewRecord{
			sentiment.English:    {{Text: "Great movie"}},
			sentiment.Portuguese: {},
		},
		Metadata: &dto.MovieMetadata{LocalTitle: "Duna", OriginalTitle: "Dune"},
	}}
	adoro := stubSource{name: "adorocinema", result: &dto.SourceResult{
		Reviews:  map[dto.Language][]dto.ReviewRecord{sentiment.Portuguese: {{Text: "Filme bom"}}},
		Metadata: &dto.MovieMetadata{LocalTitle: "Duna - Parte Um"},
	}}

	res, err := NewCompositeSource(logger.NewNop(), tmdb, adoro).Fetch(context.Background(), "Duna")
	require.NoError(t, err)
	assert.Equal(t, "Duna", res.Metadata.LocalTitle)
	assert.Len(t, res.Reviews[sentiment.English], 1)
	assert.Len(t, res.Reviews[sentiment.Portuguese], 1)
}

func TestCompositeSourceToleratesFailures(t *testing.T) {
	broken := stubSource{name: "tmdb", err: errors.New("dial tcp: timeout")}
	adoro := stubSource{name: "adorocinema", result: &dto.SourceResult{
		Reviews: map[dto.Language][]dto.ReviewRecord{sentiment.Portuguese: {{Text: "Filme bom"}}},
	}}

	res, err := NewCompositeSource(logger.NewNop(), broken, adoro).Fetch(context.Background(), "Duna")
	require.NoError(t, err)
	assert.Nil(t, res.Metadata)
	assert.Len(t, res.Reviews[sentiment.Portuguese], 1)
}

func TestCompositeSourceNotFound(t *testing.T) {
	src := NewCompositeSource(logger.NewNop(),
		stubSource{name: "tmdb", err: ErrMovieNotFound},
		stubSource{name: "adorocinema", err: errors.New("403")},
	)
	_, err := src.Fetch(context.Background(), "???")
	assert.ErrorIs(t, err, ErrMovieNotFound)
}
