package repository

import (
	"context"
	"errors"

	"cinepulse/internal/api/dto"
	"cinepulse/pkg/logger"
)

type compositeSource struct {
	sources []ReviewSource
	logger  *logger.Logger
}

// NewCompositeSource queries every source in order and merges their reviews per
// language. Metadata comes from the first source that provides it.
func NewCompositeSource(log *logger.Logger, sources ...ReviewSource) ReviewSource {
	return &compositeSource{sources: sources, logger: log}
}

func (c *compositeSource) Name() string {
	return "composite"
}

func (c *compositeSource) Fetch(ctx context.Context, title string) (*dto.SourceResult, error) {
	merged := &dto.SourceResult{Reviews: make(map[dto.Language][]dto.ReviewRecord)}
	resolved := false

	for _, src := range c.sources {
		res, err := src.Fetch(ctx, title)
		if err != nil {
			if !errors.Is(err, ErrMovieNotFound) {
				c.logger.Warn("Review source failed",
					logger.StringField("source", src.Name()),
					logger.StringField("title", title),
					logger.ErrorField(err))
			}
			continue
		}
		if res == nil {
			continue
		}
		resolved = true
		if merged.Metadata == nil && res.Metadata != nil {
			merged.Metadata = res.Metadata
		}
		for lang, reviews := range res.Reviews {
			merged.Reviews[lang] = append(merged.Reviews[lang], reviews...)
		}
	}

	if !resolved {
		return nil, ErrMovieNotFound
	}
	return merged, nil
}
