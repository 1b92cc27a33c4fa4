package repository

import (
	"strings"
	"testing"

	"cinepulse/internal/api/dto"
	"cinepulse/pkg/sentiment"

	"github.com/stretchr/testify/assert"
)

func TestBuildReviewAnalysisPromptPlaceholders(t *testing.T) {
	stats := dto.AggregateStats{
		Tally:           sentiment.Tally{Positive: 1},
		ApprovalPct:     100,
		ReviewsAnalyzed: 1,
	}
	prompt := BuildReviewAnalysisPrompt("Duna", stats, []dto.ReviewRecord{{Text: "Great movie", Language: sentiment.English}}, 15)

	assert.Contains(t, prompt, `"Duna"`)
	assert.Contains(t, prompt, "Autor: Anônimo")
	assert.Contains(t, prompt, "Data: Desconhecido")
	assert.Contains(t, prompt, "Nota: N/A")
	assert.Contains(t, prompt, "Confiança: N/A")
	assert.Contains(t, prompt, "Utilidade: N/A")
	assert.Contains(t, prompt, "Nota média: N/A")
	assert.Contains(t, prompt, "AVALIAÇÃO #1 (EN)")
	assert.Contains(t, prompt, "aprovação 100.0%")

	for _, key := range []string{"resumo_executivo", "analise_sentimento", "pontos_positivos", "pontos_negativos", "destaques_do_publico", "veredito_final", "recomendacao", "tags"} {
		assert.Contains(t, prompt, `"`+key+`"`)
	}
}

func TestBuildReviewAnalysisPromptRichFields(t *testing.T) {
	rec := dto.ReviewRecord{
		Text:           "Uma obra-prima.",
		Language:       sentiment.Portuguese,
		Reviewer:       "ana",
		Date:           "2024-03-01",
		Rating:         dto.IntOf(5),
		SentimentLabel: "positive",
		Confidence:     dto.FloatOf(0.91),
		HelpfulFrom:    dto.IntOf(8),
		HelpfulTo:      dto.IntOf(10),
		Spoiler:        true,
		Summary:        "Excelente",
	}
	stats := dto.AggregateStats{
		ReviewsAnalyzed:       1,
		RatedCount:            1,
		AverageRating:         5,
		RatingDistribution:    map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 1},
		SentimentDistribution: map[string]int{"positive": 1},
		AverageConfidence:     0.91,
	}
	prompt := BuildReviewAnalysisPrompt("Cidade de Deus", stats, []dto.ReviewRecord{rec}, 15)

	assert.Contains(t, prompt, "Nota: 5/5")
	assert.Contains(t, prompt, "Confiança: 91.0% (ALTA)")
	assert.Contains(t, prompt, "8/10 acharam útil (80%, confiança da comunidade ALTA)")
	assert.Contains(t, prompt, "CONTÉM SPOILERS")
	assert.Contains(t, prompt, "Sentimento previsto: POSITIVE")
	assert.Contains(t, prompt, "5★=1")
	assert.Contains(t, prompt, "- positive: 1")
}

func TestBuildReviewAnalysisPromptBoundsSample(t *testing.T) {
	sample := make([]dto.ReviewRecord, 20)
	for i := range sample {
		sample[i] = dto.ReviewRecord{Text: "texto qualquer", Language: sentiment.English}
	}
	prompt := BuildReviewAnalysisPrompt("X", dto.AggregateStats{}, sample, 15)
	assert.Equal(t, 15, strings.Count(prompt, "--- AVALIAÇÃO #"))
	assert.Equal(t, prompt, BuildReviewAnalysisPrompt("X", dto.AggregateStats{}, sample, 15))
}

func TestBuildReviewAnalysisPromptTruncatesDetail(t *testing.T) {
	long := strings.Repeat("é", 1501)
	prompt := BuildReviewAnalysisPrompt("X", dto.AggregateStats{}, []dto.ReviewRecord{{Text: long}}, 15)
	assert.Contains(t, prompt, strings.Repeat("é", 1500)+"...\n[Avaliação truncada por tamanho]")
	assert.NotContains(t, prompt, strings.Repeat("é", 1501))
}

func TestLevels(t *testing.T) {
	assert.Equal(t, "ALTA", confidenceLevel(0.81))
	assert.Equal(t, "MÉDIA", confidenceLevel(0.7))
	assert.Equal(t, "BAIXA", confidenceLevel(0.6))
	assert.Equal(t, "ALTA", trustLevel(71))
	assert.Equal(t, "MÉDIA", trustLevel(50))
	assert.Equal(t, "BAIXA", trustLevel(40))
}
