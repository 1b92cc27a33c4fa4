package dto

import (
	"encoding/json"
)

// SummaryStatus is the outcome of one summarization attempt.
type SummaryStatus string

const (
	SummaryOK               SummaryStatus = "ok"
	SummaryFallback         SummaryStatus = "fallback"
	SummaryNotConfigured    SummaryStatus = "not_configured"
	SummaryInsufficientData SummaryStatus = "insufficient_data"
	SummaryUnavailable      SummaryStatus = "unavailable"
)

// User-facing messages for the non-structured outcomes.
const (
	MessageNotConfigured    = "Erro: Chave do Gemini não configurada."
	MessageInsufficientData = "Não há reviews suficientes para gerar um resumo."
	MessageUnavailable      = "O sistema de IA está indisponível no momento."
	FallbackErrorMarker     = "Failed to parse structured analysis"
)

// ReviewAnalysis is the structured object the model is asked to return.
type ReviewAnalysis struct {
	ResumoExecutivo    string   `json:"resumo_executivo"`
	AnaliseSentimento  string   `json:"analise_sentimento"`
	PontosPositivos    []string `json:"pontos_positivos"`
	PontosNegativos    []string `json:"pontos_negativos"`
	DestaquesDoPublico string   `json:"destaques_do_publico"`
	VereditoFinal      string   `json:"veredito_final"`
	Recomendacao       string   `json:"recomendacao"`
	Tags               []string `json:"tags"`
}

// FallbackAnalysis carries raw model output that could not be decoded.
type FallbackAnalysis struct {
	ResumoExecutivo string `json:"resumo_executivo"`
	Error           string `json:"error"`
}

// SummaryResult is the qualitative half of a response. It serializes to the
// structured object, the fallback object, or a plain message string.
type SummaryResult struct {
	Status   SummaryStatus
	Analysis *ReviewAnalysis
	Fallback *FallbackAnalysis
	Message  string
}

// MarshalJSON implements json.Marshaler.
func (s SummaryResult) MarshalJSON() ([]byte, error) {
	switch s.Status {
	case SummaryOK:
		return json.Marshal(s.Analysis)
	case SummaryFallback:
		return json.Marshal(s.Fallback)
	default:
		return json.Marshal(s.Message)
	}
}

// AnalysisParams are the review selection parameters of a summarize request.
type AnalysisParams struct {
	Limit     int    `json:"limit,omitempty" query:"limit"`
	Sentiment string `json:"sentiment,omitempty" query:"sentiment"`
	Sort      string `json:"sort,omitempty" query:"sort"`
}

// SummarizeRequest asks for a rich summary of a movie's reviews. When Reviews
// is empty the stored reviews for MovieTitle are used.
type SummarizeRequest struct {
	MovieTitle     string          `json:"movie_title" validate:"required"`
	Reviews        []ReviewPayload `json:"reviews"`
	AnalysisParams AnalysisParams  `json:"analysis_params"`
}

// SummaryMetadata describes the reviews a summary was built from.
type SummaryMetadata struct {
	Movie                 string         `json:"movie"`
	ReviewsAnalyzed       int            `json:"reviews_analyzed"`
	AverageRating         float64        `json:"average_rating"`
	RatingDistribution    map[int]int    `json:"rating_distribution"`
	SentimentDistribution map[string]int `json:"sentiment_distribution"`
	AverageConfidence     float64        `json:"average_confidence"`
	SpoilerCount          int            `json:"spoiler_count"`
	ApprovalPct           float64        `json:"approval_pct"`
	AnalysisParams        AnalysisParams `json:"analysis_params"`
	TopHelpfulReviewers   []string       `json:"top_helpful_reviewers"`
}

// SummarizeResponse is the body of POST /api/summarize.
type SummarizeResponse struct {
	Summary  SummaryResult   `json:"summary"`
	Metadata SummaryMetadata `json:"metadata"`
}
