package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cinepulse/internal/api/config"
	"cinepulse/internal/api/dto"
	"cinepulse/internal/api/repository"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/sentiment"
)

// Classifier labels review texts per language. *sentiment.Registry satisfies it.
type Classifier interface {
	Available(lang sentiment.Language) bool
	Classify(ctx context.Context, lang sentiment.Language, texts []string) ([]string, error)
}

// AnalysisService turns a movie title into a sentiment report.
type AnalysisService interface {
	Analyze(ctx context.Context, title string) (*dto.AnalysisResponse, error)
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(
	source repository.ReviewSource,
	classifier Classifier,
	normalizer *sentiment.Normalizer,
	summarizer SummarizerService,
	cfg config.Analysis,
	logger *logger.Logger,
) AnalysisService {
	return &analysisService{
		source:     source,
		classifier: classifier,
		normalizer: normalizer,
		summarizer: summarizer,
		cfg:        cfg,
		logger:     logger,
	}
}

type analysisService struct {
	source     repository.ReviewSource
	classifier Classifier
	normalizer *sentiment.Normalizer
	summarizer SummarizerService
	cfg        config.Analysis
	logger     *logger.Logger
}

// Analyze fetches, classifies, aggregates and summarizes the reviews of title.
// It returns repository.ErrMovieNotFound when no review exists in any language;
// every later failure degrades the matching part of the response instead.
func (s *analysisService) Analyze(ctx context.Context, title string) (*dto.AnalysisResponse, error) {
	title = strings.TrimSpace(title)

	result, err := s.source.Fetch(ctx, title)
	if err != nil {
		if !errors.Is(err, repository.ErrMovieNotFound) {
			s.logger.Warn("Review source failed", logger.StringField("title", title), logger.ErrorField(err))
		}
		return nil, fmt.Errorf("%w: %s", repository.ErrMovieNotFound, title)
	}
	if result.Empty() {
		return nil, fmt.Errorf("%w: %s", repository.ErrMovieNotFound, title)
	}

	tallies := make(map[dto.Language]sentiment.Tally, len(sentiment.Languages))
	var records []dto.ReviewRecord
	groups := make([][]dto.ReviewRecord, 0, len(sentiment.Languages))
	for _, lang := range sentiment.Languages {
		reviews := result.Reviews[lang]
		if len(reviews) == 0 {
			continue
		}
		labels := s.classify(ctx, lang, result.Texts(lang))
		tallies[lang] = s.normalizer.Tally(labels)
		group := labeled(reviews, labels)
		groups = append(groups, group)
		records = append(records, group...)
	}

	stats := Aggregate(tallies, records)

	displayTitle := title
	if result.Metadata != nil && result.Metadata.LocalTitle != "" {
		displayTitle = result.Metadata.LocalTitle
	}
	var prompt string
	if len(records) > 0 {
		prompt = repository.BuildReviewAnalysisPrompt(displayTitle, stats, interleave(groups), s.cfg.MaxPromptReviews)
	}

	s.logger.Info("Reviews classified",
		logger.StringField("title", title),
		logger.IntField("reviews", len(records)),
		logger.IntField("positive", stats.Tally.Positive),
		logger.IntField("negative", stats.Tally.Negative))

	return &dto.AnalysisResponse{
		FilmeBuscado: title,
		Metadados:    result.Metadata,
		AnaliseQuantitativa: dto.QuantitativeAnalysis{
			Positivos: stats.Tally.Positive,
			Negativos: stats.Tally.Negative,
			NotaMedia: stats.ApprovalPct,
			PorIdioma: stats.ByLanguage,
		},
		AnaliseQualitativa: s.summarizer.Summarize(ctx, prompt),
	}, nil
}

// classify returns nil when the language has no classifier or the classifier
// fails, so the language contributes nothing to the tally.
func (s *analysisService) classify(ctx context.Context, lang sentiment.Language, texts []string) []string {
	if s.classifier == nil || !s.classifier.Available(lang) {
		s.logger.Warn("No classifier for language, skipping tally", logger.StringField("language", string(lang)))
		return nil
	}
	labels, err := s.classifier.Classify(ctx, lang, texts)
	if err != nil {
		s.logger.Warn("Classifier failed, skipping tally",
			logger.StringField("language", string(lang)),
			logger.ErrorField(err))
		return nil
	}
	if len(labels) != len(texts) {
		s.logger.Warn("Classifier returned a mismatched label count, skipping tally",
			logger.StringField("language", string(lang)),
			logger.IntField("texts", len(texts)),
			logger.IntField("labels", len(labels)))
		return nil
	}
	return labels
}

// labeled copies reviews, attaching labels[i] to the i-th copy when present.
func labeled(reviews []dto.ReviewRecord, labels []string) []dto.ReviewRecord {
	out := make([]dto.ReviewRecord, len(reviews))
	copy(out, reviews)
	if len(labels) == len(out) {
		for i := range out {
			out[i].SentimentLabel = labels[i]
		}
	}
	return out
}

// interleave takes one record from each group in turn, so a prompt cap keeps
// every language represented.
func interleave(groups [][]dto.ReviewRecord) []dto.ReviewRecord {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	out := make([]dto.ReviewRecord, 0, total)
	for i := 0; len(out) < total; i++ {
		for _, g := range groups {
			if i < len(g) {
				out = append(out, g[i])
			}
		}
	}
	return out
}
