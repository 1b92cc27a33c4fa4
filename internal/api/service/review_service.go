package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"cinepulse/internal/api/dto"
	"cinepulse/internal/api/repository"
	"cinepulse/internal/entity"
	"cinepulse/pkg/common"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/sentiment"
	"cinepulse/pkg/utils"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"gorm.io/datatypes"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ReviewService defines the interface for managing stored reviews.
type ReviewService interface {
	ListReviews(ctx context.Context, query dto.ListReviewsQuery) (*dto.ReviewListResponse, error)
	GetReview(ctx context.Context, id string) (*dto.ReviewResponse, error)
	CreateReview(ctx context.Context, req *dto.ReviewPayload) (*dto.ReviewResponse, error)
	UpdateReview(ctx context.Context, id string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, id string) error
	ListMovies(ctx context.Context) ([]dto.MovieEntry, error)
	Stats(ctx context.Context) (*dto.DatasetStats, error)
	WarmCache(ctx context.Context) error
}

// NewReviewService creates a new review service. Catalogue and stats reads
// are cached for ttl and dropped on every write.
func NewReviewService(reviewRepo repository.MovieReviewRepository, normalizer *sentiment.Normalizer, ttl time.Duration, logger *logger.Logger) ReviewService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &reviewService{
		reviewRepo: reviewRepo,
		normalizer: normalizer,
		cache:      cache.New(ttl, 2*ttl),
		logger:     logger,
	}
}

type reviewService struct {
	reviewRepo repository.MovieReviewRepository
	normalizer *sentiment.Normalizer
	cache      *cache.Cache
	logger     *logger.Logger
}

// ListReviews returns one page of reviews matching query.
func (s *reviewService) ListReviews(ctx context.Context, query dto.ListReviewsQuery) (*dto.ReviewListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	size := query.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	include, exclude := sentimentFilter(s.normalizer, query.Sentiment)
	reviews, total, err := s.reviewRepo.Find(ctx, repository.ReviewFilter{
		Movie:         query.Movie,
		Labels:        include,
		ExcludeLabels: exclude,
		Sort:          normalizeSort(query.Sort),
		Limit:         size,
		Offset:        (page - 1) * size,
	})
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, toReviewResponse(&reviews[i]))
	}
	return &dto.ReviewListResponse{Items: items, Total: total, Page: page, PageSize: size}, nil
}

// GetReview retrieves a review by its id.
func (s *reviewService) GetReview(ctx context.Context, id string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReviewResponse(review), nil
}

// CreateReview stores a new review, generating its id when absent.
func (s *reviewService) CreateReview(ctx context.Context, req *dto.ReviewPayload) (*dto.ReviewResponse, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	review := ReviewFromPayload(*req, raw)
	if err := s.reviewRepo.Create(ctx, &review); err != nil {
		return nil, err
	}
	s.invalidate()
	return toReviewResponse(&review), nil
}

// UpdateReview applies the present fields of req to the stored review.
func (s *reviewService) UpdateReview(ctx context.Context, id string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Reviewer != nil {
		review.Reviewer = *req.Reviewer
	}
	if req.Movie != nil {
		review.Movie = strings.TrimSpace(*req.Movie)
	}
	if req.Rating != nil {
		review.Rating = req.Rating.Ptr()
	}
	if req.ReviewSummary != nil {
		review.ReviewSummary = *req.ReviewSummary
	}
	if req.ReviewDate != nil {
		review.ReviewDate = *req.ReviewDate
	}
	if req.SpoilerTag != nil {
		review.SpoilerTag = spoilerFlag(*req.SpoilerTag)
	}
	if req.ReviewDetail != nil {
		review.ReviewDetail = *req.ReviewDetail
	}
	if req.HelpfulFrom != nil {
		review.HelpfulFrom = *req.HelpfulFrom
	}
	if req.HelpfulTo != nil {
		review.HelpfulTo = *req.HelpfulTo
	}
	if req.SourceMovie != nil {
		review.SourceMovie = *req.SourceMovie
	}
	if req.PredictedSentiment != nil {
		review.PredictedSentiment = *req.PredictedSentiment
	}
	if req.PredictionConfidence != nil {
		review.PredictionConfidence = req.PredictionConfidence.Ptr()
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	s.invalidate()
	return toReviewResponse(review), nil
}

// DeleteReview deletes a review by its id.
func (s *reviewService) DeleteReview(ctx context.Context, id string) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// ListMovies returns the distinct movies with their review counts.
func (s *reviewService) ListMovies(ctx context.Context) ([]dto.MovieEntry, error) {
	if cached, found := s.cache.Get(common.CacheKeyMovies); found {
		return cached.([]dto.MovieEntry), nil
	}
	movies, err := s.reviewRepo.ListMovies(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.MovieEntry, 0, len(movies))
	for _, m := range movies {
		entries = append(entries, dto.MovieEntry{
			Movie:       m.Movie,
			ReviewCount: m.ReviewCount,
			AvgRating:   round(m.AvgRating, 2),
		})
	}
	s.cache.SetDefault(common.CacheKeyMovies, entries)
	return entries, nil
}

// Stats returns the dataset verification report.
func (s *reviewService) Stats(ctx context.Context) (*dto.DatasetStats, error) {
	if cached, found := s.cache.Get(common.CacheKeyDatasetStats); found {
		return cached.(*dto.DatasetStats), nil
	}
	stats, err := s.reviewRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	stats.AverageRating = round(stats.AverageRating, 2)
	s.cache.SetDefault(common.CacheKeyDatasetStats, stats)
	return stats, nil
}

// WarmCache reloads the catalogue and stats entries.
func (s *reviewService) WarmCache(ctx context.Context) error {
	s.invalidate()
	if _, err := s.ListMovies(ctx); err != nil {
		return err
	}
	if _, err := s.Stats(ctx); err != nil {
		return err
	}
	s.logger.Debug("Catalogue cache warmed")
	return nil
}

func (s *reviewService) invalidate() {
	s.cache.Delete(common.CacheKeyMovies)
	s.cache.Delete(common.CacheKeyDatasetStats)
}

// ReviewFromPayload maps a client or dataset review onto its table row. raw is
// kept verbatim in the jsonb column.
func ReviewFromPayload(p dto.ReviewPayload, raw []byte) entity.MovieReview {
	id := strings.TrimSpace(p.ReviewID)
	if id == "" {
		id = uuid.NewString()
	}
	from, to := p.Votes()
	review := entity.MovieReview{
		ReviewID:             id,
		Reviewer:             p.Reviewer,
		Movie:                strings.TrimSpace(p.Movie),
		Rating:               p.Rating.Ptr(),
		ReviewSummary:        p.ReviewSummary,
		ReviewDate:           p.ReviewDate,
		SpoilerTag:           spoilerFlag(p.SpoilerTag),
		ReviewDetail:         p.ReviewDetail,
		HelpfulFrom:          utils.Itoa(from.Ptr()),
		HelpfulTo:            utils.Itoa(to.Ptr()),
		SourceMovie:          p.SourceMovie,
		PredictedSentiment:   p.PredictedSentiment,
		PredictionConfidence: p.PredictionConfidence.Ptr(),
	}
	if len(raw) > 0 {
		review.Raw = datatypes.JSON(raw)
	}
	return review
}

// ReviewRecordFromEntity converts a stored review into a pipeline record.
func ReviewRecordFromEntity(r *entity.MovieReview, lang dto.Language) dto.ReviewRecord {
	rec := dto.ReviewRecord{
		Text:           r.ReviewDetail,
		Language:       lang,
		Summary:        r.ReviewSummary,
		SentimentLabel: r.PredictedSentiment,
		Spoiler:        r.SpoilerTag == 1,
		Reviewer:       r.Reviewer,
		Date:           r.ReviewDate,
	}
	if r.Rating != nil {
		rec.Rating = dto.IntOf(*r.Rating)
	}
	if r.PredictionConfidence != nil {
		rec.Confidence = dto.FloatOf(*r.PredictionConfidence)
	}
	if n, ok := utils.Atoi(r.HelpfulFrom); ok {
		rec.HelpfulFrom = dto.IntOf(n)
	}
	if n, ok := utils.Atoi(r.HelpfulTo); ok {
		rec.HelpfulTo = dto.IntOf(n)
	}
	return rec
}

func spoilerFlag(v dto.OptionalInt) int {
	if v.Valid && v.Value == 1 {
		return 1
	}
	return 0
}

func toReviewResponse(r *entity.MovieReview) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ReviewID:             r.ReviewID,
		Reviewer:             r.Reviewer,
		Movie:                r.Movie,
		Rating:               r.Rating,
		ReviewSummary:        r.ReviewSummary,
		ReviewDate:           r.ReviewDate,
		SpoilerTag:           r.SpoilerTag,
		ReviewDetail:         r.ReviewDetail,
		HelpfulFrom:          r.HelpfulFrom,
		HelpfulTo:            r.HelpfulTo,
		SourceMovie:          r.SourceMovie,
		PredictedSentiment:   r.PredictedSentiment,
		PredictionConfidence: r.PredictionConfidence,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}
