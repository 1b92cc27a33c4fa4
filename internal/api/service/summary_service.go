package service

import (
	"context"
	"fmt"
	"strings"

	"cinepulse/internal/api/config"
	"cinepulse/internal/api/dto"
	"cinepulse/internal/api/repository"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/sentiment"
)

// SummaryService builds rich summaries from stored or client supplied reviews.
type SummaryService interface {
	Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error)
}

// NewSummaryService creates a new summary service.
func NewSummaryService(
	reviewRepo repository.MovieReviewRepository,
	normalizer *sentiment.Normalizer,
	summarizer SummarizerService,
	cfg config.Analysis,
	logger *logger.Logger,
) SummaryService {
	return &summaryService{
		reviewRepo: reviewRepo,
		normalizer: normalizer,
		summarizer: summarizer,
		cfg:        cfg,
		logger:     logger,
	}
}

type summaryService struct {
	reviewRepo repository.MovieReviewRepository
	normalizer *sentiment.Normalizer
	summarizer SummarizerService
	cfg        config.Analysis
	logger     *logger.Logger
}

// Summarize selects the reviews, aggregates them and asks the model for a
// summary. It returns repository.ErrMovieNotFound when no review matches.
func (s *summaryService) Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	title := strings.TrimSpace(req.MovieTitle)
	params := s.normalizeParams(req.AnalysisParams)

	records, err := s.selectRecords(ctx, title, req.Reviews, params)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", repository.ErrMovieNotFound, title)
	}

	labels := make([]string, 0, len(records))
	for _, rec := range records {
		labels = append(labels, rec.SentimentLabel)
	}
	tallies := map[dto.Language]sentiment.Tally{sentiment.English: s.normalizer.Tally(labels)}
	stats := Aggregate(tallies, records)

	prompt := repository.BuildReviewAnalysisPrompt(title, stats, records, s.cfg.MaxPromptReviews)
	summary := s.summarizer.Summarize(ctx, prompt)

	s.logger.Info("Summary generated",
		logger.StringField("movie", title),
		logger.IntField("reviews", len(records)),
		logger.StringField("status", string(summary.Status)))

	return &dto.SummarizeResponse{
		Summary: summary,
		Metadata: dto.SummaryMetadata{
			Movie:                 title,
			ReviewsAnalyzed:       stats.ReviewsAnalyzed,
			AverageRating:         stats.AverageRating,
			RatingDistribution:    stats.RatingDistribution,
			SentimentDistribution: stats.SentimentDistribution,
			AverageConfidence:     stats.AverageConfidence,
			SpoilerCount:          stats.SpoilerCount,
			ApprovalPct:           stats.ApprovalPct,
			AnalysisParams:        params,
			TopHelpfulReviewers:   stats.TopHelpfulReviewers,
		},
	}, nil
}

func (s *summaryService) normalizeParams(p dto.AnalysisParams) dto.AnalysisParams {
	if p.Limit <= 0 {
		p.Limit = s.cfg.DefaultLimit
	}
	if s.cfg.MaxLimit > 0 && p.Limit > s.cfg.MaxLimit {
		p.Limit = s.cfg.MaxLimit
	}
	p.Sort = normalizeSort(p.Sort)
	p.Sentiment = strings.ToLower(strings.TrimSpace(p.Sentiment))
	return p
}

func (s *summaryService) selectRecords(ctx context.Context, title string, payloads []dto.ReviewPayload, params dto.AnalysisParams) ([]dto.ReviewRecord, error) {
	if len(payloads) > 0 {
		if len(payloads) > params.Limit {
			payloads = payloads[:params.Limit]
		}
		records := make([]dto.ReviewRecord, 0, len(payloads))
		for _, p := range payloads {
			records = append(records, p.Record(sentiment.English))
		}
		return records, nil
	}

	include, exclude := sentimentFilter(s.normalizer, params.Sentiment)
	reviews, _, err := s.reviewRepo.Find(ctx, repository.ReviewFilter{
		Movie:         title,
		Labels:        include,
		ExcludeLabels: exclude,
		Sort:          params.Sort,
		Limit:         params.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("load reviews for %q: %w", title, err)
	}
	records := make([]dto.ReviewRecord, 0, len(reviews))
	for i := range reviews {
		records = append(records, ReviewRecordFromEntity(&reviews[i], sentiment.English))
	}
	return records, nil
}
