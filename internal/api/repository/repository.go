package repository

import (
	"context"
	"errors"

	"cinepulse/internal/api/dto"
	"cinepulse/internal/entity"
)

var (
	// ErrMovieNotFound means no source could resolve the title.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrReviewNotFound means no stored review has the requested id.
	ErrReviewNotFound = errors.New("review not found")
)

// ReviewSource fetches reviews and metadata for a free-text title.
type ReviewSource interface {
	Name() string
	Fetch(ctx context.Context, title string) (*dto.SourceResult, error)
}

// TextGenerator produces text from a prompt using a hosted model.
type TextGenerator interface {
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// Sort orders for stored reviews.
const (
	SortHelpful    = "helpful"
	SortRecent     = "recent"
	SortRatingHigh = "rating_high"
	SortRatingLow  = "rating_low"
)

// ReviewFilter selects stored reviews. Labels and ExcludeLabels match
// predicted_sentiment case-insensitively.
type ReviewFilter struct {
	Movie         string
	Labels        []string
	ExcludeLabels []string
	Sort          string
	Limit         int
	Offset        int
}

// MovieReviewRepository is the persistence boundary for stored reviews.
type MovieReviewRepository interface {
	Create(ctx context.Context, review *entity.MovieReview) error
	CreateBatch(ctx context.Context, reviews []entity.MovieReview, batchSize int) (int64, error)
	FindByID(ctx context.Context, id string) (*entity.MovieReview, error)
	Find(ctx context.Context, filter ReviewFilter) ([]entity.MovieReview, int64, error)
	Update(ctx context.Context, review *entity.MovieReview) error
	Delete(ctx context.Context, id string) error
	ListMovies(ctx context.Context) ([]entity.MovieReviewCount, error)
	Stats(ctx context.Context) (*dto.DatasetStats, error)
	Truncate(ctx context.Context) error
}
