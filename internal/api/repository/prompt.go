package repository

import (
	"fmt"
	"sort"
	"strings"

	"cinepulse/internal/api/dto"
	"cinepulse/pkg/utils"
)

const (
	maxReviewDetailRunes = 1500
	placeholderNA        = "N/A"
	placeholderUnknown   = "Desconhecido"
	placeholderReviewer  = "Anônimo"
	truncatedMarker      = "...\n[Avaliação truncada por tamanho]"
)

// BuildReviewAnalysisPrompt renders the statistics, up to maxReviews sampled
// reviews and the JSON output contract for the summarizer.
func BuildReviewAnalysisPrompt(movieTitle string, stats dto.AggregateStats, sample []dto.ReviewRecord, maxReviews int) string {
	if maxReviews > 0 && len(sample) > maxReviews {
		sample = sample[:maxReviews]
	}

	var reviews strings.Builder
	for i, rec := range sample {
		reviews.WriteString(formatReviewBlock(i+1, rec))
	}

	return fmt.Sprintf(`Você é um crítico de cinema especialista e analista de dados. Analise as avaliações do filme "%s" e forneça uma resposta ESTRUTURADA EM JSON.

=== DADOS PARA ANÁLISE ===

ESTATÍSTICAS:
%s
AVALIAÇÕES DETALHADAS:
%s
=== INSTRUÇÕES DE SAÍDA (JSON) ===

Você DEVE retornar APENAS um objeto JSON válido com a seguinte estrutura exata (sem markdown, sem crases):

{
    "resumo_executivo": "Um parágrafo conciso resumindo a recepção geral do filme e o consenso principal.",
    "analise_sentimento": "Uma análise de 2-3 frases sobre a divisão entre sentimentos positivos e negativos e a confiança da análise.",
    "pontos_positivos": ["Ponto positivo 1", "Ponto positivo 2", "Ponto positivo 3"],
    "pontos_negativos": ["Ponto negativo 1", "Ponto negativo 2", "Ponto negativo 3"],
    "destaques_do_publico": "O que o público mais amou ou odiou especificamente.",
    "veredito_final": "Uma frase de conclusão impactante.",
    "recomendacao": "Para quem é este filme?",
    "tags": ["Tag1", "Tag2", "Tag3", "Tag4", "Tag5"]
}

IMPORTANTE:
1. O JSON deve ser válido.
2. Todo o conteúdo deve estar em PORTUGUÊS (pt-BR).
3. "tags" deve conter 5-8 palavras-chave curtas e descritivas.
4. Seja específico e use dados das avaliações fornecidas.
`, movieTitle, formatStatsBlock(stats), reviews.String())
}

func formatStatsBlock(stats dto.AggregateStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- Total: %d avaliações\n", stats.ReviewsAnalyzed)
	if stats.RatedCount > 0 {
		fmt.Fprintf(&b, "- Nota média: %.2f/5 (%d avaliações com nota)\n", stats.AverageRating, stats.RatedCount)
	} else {
		fmt.Fprintf(&b, "- Nota média: %s\n", placeholderNA)
	}
	fmt.Fprintf(&b, "- Classificador: %d positivas, %d negativas, aprovação %.1f%%\n",
		stats.Tally.Positive, stats.Tally.Negative, stats.ApprovalPct)
	if stats.AverageConfidence > 0 {
		fmt.Fprintf(&b, "- Confiança ML: %.1f%%\n", stats.AverageConfidence*100)
	}
	fmt.Fprintf(&b, "- Spoilers: %d\n", stats.SpoilerCount)

	if stats.RatedCount > 0 {
		b.WriteString("- Distribuição de notas:")
		for star := 1; star <= 5; star++ {
			fmt.Fprintf(&b, " %d★=%d", star, stats.RatingDistribution[star])
		}
		b.WriteString("\n")
	}

	if len(stats.SentimentDistribution) > 0 {
		labels := make([]string, 0, len(stats.SentimentDistribution))
		for label := range stats.SentimentDistribution {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		b.WriteString("\nSENTIMENTOS:\n")
		for _, label := range labels {
			fmt.Fprintf(&b, "- %s: %d\n", label, stats.SentimentDistribution[label])
		}
	}
	return b.String()
}

func formatReviewBlock(idx int, rec dto.ReviewRecord) string {
	reviewer := strings.TrimSpace(rec.Reviewer)
	if reviewer == "" {
		reviewer = placeholderReviewer
	}
	date := strings.TrimSpace(rec.Date)
	if date == "" {
		date = placeholderUnknown
	}
	rating := placeholderNA
	if rec.Rating.Valid {
		rating = fmt.Sprintf("%d/5", rec.Rating.Value)
	}
	label := placeholderUnknown
	if rec.SentimentLabel != "" {
		label = strings.ToUpper(rec.SentimentLabel)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n--- AVALIAÇÃO #%d (%s) ---\n", idx, strings.ToUpper(string(rec.Language)))
	fmt.Fprintf(&b, "Autor: %s\nData: %s\nNota: %s\n", reviewer, date, rating)
	fmt.Fprintf(&b, "Sentimento previsto: %s\n", label)
	if rec.Confidence.Valid {
		fmt.Fprintf(&b, "Confiança: %.1f%% (%s)\n", rec.Confidence.Value*100, confidenceLevel(rec.Confidence.Value))
	} else {
		fmt.Fprintf(&b, "Confiança: %s\n", placeholderNA)
	}
	if rec.HelpfulFrom.Valid && rec.HelpfulTo.Valid && rec.HelpfulTo.Value > 0 {
		pct := float64(rec.HelpfulFrom.Value) / float64(rec.HelpfulTo.Value) * 100
		fmt.Fprintf(&b, "Utilidade: %d/%d acharam útil (%.0f%%, confiança da comunidade %s)\n",
			rec.HelpfulFrom.Value, rec.HelpfulTo.Value, pct, trustLevel(pct))
	} else {
		fmt.Fprintf(&b, "Utilidade: %s\n", placeholderNA)
	}
	if rec.Spoiler {
		b.WriteString("CONTÉM SPOILERS\n")
	}
	if summary := strings.TrimSpace(rec.Summary); summary != "" {
		fmt.Fprintf(&b, "Resumo: %s\n", summary)
	}
	fmt.Fprintf(&b, "Texto: %s\n", utils.TruncateRunes(strings.TrimSpace(rec.Text), maxReviewDetailRunes, truncatedMarker))
	return b.String()
}

func confidenceLevel(c float64) string {
	switch {
	case c > 0.8:
		return "ALTA"
	case c > 0.6:
		return "MÉDIA"
	default:
		return "BAIXA"
	}
}

func trustLevel(pct float64) string {
	switch {
	case pct > 70:
		return "ALTA"
	case pct > 40:
		return "MÉDIA"
	default:
		return "BAIXA"
	}
}
