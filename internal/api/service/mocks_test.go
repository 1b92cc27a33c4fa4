package service

import (
	"context"
	"fmt"

	"cinepulse/internal/api/dto"
	"cinepulse/internal/api/repository"
	"cinepulse/internal/entity"
	"cinepulse/pkg/sentiment"

	"github.com/stretchr/testify/mock"
)

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, review *entity.MovieReview) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepository) CreateBatch(ctx context.Context, reviews []entity.MovieReview, batchSize int) (int64, error) {
	args := m.Called(ctx, reviews, batchSize)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id string) (*entity.MovieReview, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*entity.MovieReview)
	return review, args.Error(1)
}

func (m *mockReviewRepository) Find(ctx context.Context, filter repository.ReviewFilter) ([]entity.MovieReview, int64, error) {
	args := m.Called(ctx, filter)
	reviews, _ := args.Get(0).([]entity.MovieReview)
	return reviews, args.Get(1).(int64), args.Error(2)
}

func (m *mockReviewRepository) Update(ctx context.Context, review *entity.MovieReview) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReviewRepository) ListMovies(ctx context.Context) ([]entity.MovieReviewCount, error) {
	args := m.Called(ctx)
	movies, _ := args.Get(0).([]entity.MovieReviewCount)
	return movies, args.Error(1)
}

func (m *mockReviewRepository) Stats(ctx context.Context) (*dto.DatasetStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).(*dto.DatasetStats)
	return stats, args.Error(1)
}

func (m *mockReviewRepository) Truncate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type stubSource struct {
	result *dto.SourceResult
	err    error
}

func (s stubSource) Name() string { return "stub" }

func (s stubSource) Fetch(context.Context, string) (*dto.SourceResult, error) {
	return s.result, s.err
}

// stubClassifier returns fixed labels per language.
type stubClassifier struct {
	labels map[sentiment.Language][]string
	err    error
}

func (c stubClassifier) Available(lang sentiment.Language) bool {
	_, ok := c.labels[lang]
	return ok
}

func (c stubClassifier) Classify(_ context.Context, lang sentiment.Language, texts []string) ([]string, error) {
	if c.err != nil {
		return nil, c.err
	}
	labels, ok := c.labels[lang]
	if !ok {
		return nil, fmt.Errorf("no classifier for %s", lang)
	}
	return labels, nil
}

type stubGenerator struct {
	configured bool
	text       string
	err        error
	prompts    []string
}

func (g *stubGenerator) Configured() bool { return g.configured }

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.text, g.err
}

func mustNormalizer() *sentiment.Normalizer {
	n, err := sentiment.NewNormalizer(nil)
	if err != nil {
		panic(err)
	}
	return n
}

const validAnalysisJSON = `{
  "resumo_executivo": "Recepção muito positiva.",
  "analise_sentimento": "Quase unânime.",
  "pontos_positivos": ["Atuação", "Trilha", "Fotografia"],
  "pontos_negativos": ["Ritmo", "Duração", "Final"],
  "destaques_do_publico": "O elenco.",
  "veredito_final": "Imperdível.",
  "recomendacao": "Fãs de ficção científica.",
  "tags": ["épico", "ficção", "drama", "visual", "trilha"]
}`
