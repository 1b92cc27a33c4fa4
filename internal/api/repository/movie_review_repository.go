package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinepulse/internal/api/dto"
	"cinepulse/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewMovieReviewRepository creates a new GORM-based review repository.
func NewMovieReviewRepository(db *gorm.DB) MovieReviewRepository {
	return &movieReviewRepository{db: db}
}

type movieReviewRepository struct {
	db *gorm.DB
}

func (r *movieReviewRepository) Create(ctx context.Context, review *entity.MovieReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// CreateBatch inserts reviews in chunks, skipping ids that already exist.
// It returns the number of rows actually inserted.
func (r *movieReviewRepository) CreateBatch(ctx context.Context, reviews []entity.MovieReview, batchSize int) (int64, error) {
	if batchSize < 1 {
		return 0, fmt.Errorf("batch size must be at least 1, got %d", batchSize)
	}
	if len(reviews) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "review_id"}}, DoNothing: true}).
		CreateInBatches(reviews, batchSize)
	return result.RowsAffected, result.Error
}

func (r *movieReviewRepository) FindByID(ctx context.Context, id string) (*entity.MovieReview, error) {
	var review entity.MovieReview
	err := r.db.WithContext(ctx).Where("review_id = ?", id).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Find returns the page selected by filter and the total number of matches.
func (r *movieReviewRepository) Find(ctx context.Context, filter ReviewFilter) ([]entity.MovieReview, int64, error) {
	var total int64
	countQuery := applyFilter(r.db.WithContext(ctx).Model(&entity.MovieReview{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	query := applyFilter(r.db.WithContext(ctx).Model(&entity.MovieReview{}), filter).
		Order(orderClause(filter.Sort))
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var reviews []entity.MovieReview
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("find reviews: %w", err)
	}
	return reviews, total, nil
}

func (r *movieReviewRepository) Update(ctx context.Context, review *entity.MovieReview) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *movieReviewRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("review_id = ?", id).Delete(&entity.MovieReview{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// ListMovies returns every distinct movie with its review count, most reviewed first.
func (r *movieReviewRepository) ListMovies(ctx context.Context) ([]entity.MovieReviewCount, error) {
	var movies []entity.MovieReviewCount
	err := r.db.WithContext(ctx).Model(&entity.MovieReview{}).
		Select("movie, COUNT(*) AS review_count, COALESCE(AVG(rating), 0) AS avg_rating").
		Where("movie IS NOT NULL AND movie <> ''").
		Group("movie").
		Order("review_count DESC, movie ASC").
		Scan(&movies).Error
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return movies, nil
}

// Stats computes the dataset verification report.
func (r *movieReviewRepository) Stats(ctx context.Context) (*dto.DatasetStats, error) {
	db := r.db.WithContext(ctx).Model(&entity.MovieReview{})

	var totals struct {
		Total     int64
		Movies    int64
		AvgRating float64
	}
	err := db.Select("COUNT(*) AS total, COUNT(DISTINCT movie) AS movies, COALESCE(AVG(rating), 0) AS avg_rating").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("review totals: %w", err)
	}

	var labels []entity.LabelCount
	err = r.db.WithContext(ctx).Model(&entity.MovieReview{}).
		Select("predicted_sentiment, COUNT(*) AS count").
		Where("predicted_sentiment IS NOT NULL AND predicted_sentiment <> ''").
		Group("predicted_sentiment").
		Scan(&labels).Error
	if err != nil {
		return nil, fmt.Errorf("sentiment distribution: %w", err)
	}

	dist := make(map[string]int64, len(labels))
	for _, l := range labels {
		dist[l.Label] = l.Count
	}
	return &dto.DatasetStats{
		TotalReviews:          totals.Total,
		UniqueMovies:          totals.Movies,
		SentimentDistribution: dist,
		AverageRating:         totals.AvgRating,
	}, nil
}

func (r *movieReviewRepository) Truncate(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("TRUNCATE TABLE movie_reviews").Error
}

func applyFilter(query *gorm.DB, filter ReviewFilter) *gorm.DB {
	if movie := strings.TrimSpace(filter.Movie); movie != "" {
		query = query.Where("LOWER(movie) = LOWER(?)", movie)
	}
	if len(filter.Labels) > 0 {
		query = query.Where("LOWER(TRIM(predicted_sentiment)) IN ?", filter.Labels)
	}
	if len(filter.ExcludeLabels) > 0 {
		query = query.Where("(predicted_sentiment IS NULL OR LOWER(TRIM(predicted_sentiment)) NOT IN ?)", filter.ExcludeLabels)
	}
	return query
}

const helpfulVotesExpr = "CASE WHEN helpful_from ~ '^[0-9]+$' THEN helpful_from::bigint ELSE 0 END"

func orderClause(sort string) string {
	switch sort {
	case SortRecent:
		return "created_at DESC, review_id ASC"
	case SortRatingHigh:
		return "rating DESC NULLS LAST, review_id ASC"
	case SortRatingLow:
		return "rating ASC NULLS LAST, review_id ASC"
	default:
		return helpfulVotesExpr + " DESC, review_id ASC"
	}
}
