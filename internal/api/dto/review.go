package dto

import (
	"time"
)

// ReviewPayload is a review as clients send it. Numeric fields tolerate strings
// and junk. Helpful votes may come as helpful_from/helpful_to or as a
// two-element helpful array.
type ReviewPayload struct {
	ReviewID             string        `json:"review_id"`
	Reviewer             string        `json:"reviewer"`
	Movie                string        `json:"movie" validate:"required"`
	Rating               OptionalInt   `json:"rating" swaggertype:"integer"`
	ReviewSummary        string        `json:"review_summary"`
	ReviewDate           string        `json:"review_date"`
	SpoilerTag           OptionalInt   `json:"spoiler_tag" swaggertype:"integer"`
	ReviewDetail         string        `json:"review_detail"`
	HelpfulFrom          OptionalInt   `json:"helpful_from" swaggertype:"string"`
	HelpfulTo            OptionalInt   `json:"helpful_to" swaggertype:"string"`
	Helpful              []OptionalInt `json:"helpful,omitempty" swaggertype:"array,string"`
	SourceMovie          string        `json:"source_movie"`
	PredictedSentiment   string        `json:"predicted_sentiment"`
	PredictionConfidence OptionalFloat `json:"prediction_confidence" swaggertype:"number"`
}

// Votes returns the helpful counters, preferring the helpful array when present.
func (p ReviewPayload) Votes() (from, to OptionalInt) {
	if len(p.Helpful) >= 2 {
		return p.Helpful[0], p.Helpful[1]
	}
	return p.HelpfulFrom, p.HelpfulTo
}

// Record converts the payload into a pipeline record.
func (p ReviewPayload) Record(lang Language) ReviewRecord {
	from, to := p.Votes()
	return ReviewRecord{
		Text:           p.ReviewDetail,
		Language:       lang,
		Summary:        p.ReviewSummary,
		Rating:         p.Rating,
		SentimentLabel: p.PredictedSentiment,
		Confidence:     p.PredictionConfidence,
		Spoiler:        p.SpoilerTag.Valid && p.SpoilerTag.Value == 1,
		HelpfulFrom:    from,
		HelpfulTo:      to,
		Reviewer:       p.Reviewer,
		Date:           p.ReviewDate,
	}
}

// UpdateReviewRequest is the body of PUT /api/reviews/:id. Omitted fields keep their value.
type UpdateReviewRequest struct {
	Reviewer             *string        `json:"reviewer"`
	Movie                *string        `json:"movie"`
	Rating               *OptionalInt   `json:"rating" swaggertype:"integer"`
	ReviewSummary        *string        `json:"review_summary"`
	ReviewDate           *string        `json:"review_date"`
	SpoilerTag           *OptionalInt   `json:"spoiler_tag" swaggertype:"integer"`
	ReviewDetail         *string        `json:"review_detail"`
	HelpfulFrom          *string        `json:"helpful_from"`
	HelpfulTo            *string        `json:"helpful_to"`
	SourceMovie          *string        `json:"source_movie"`
	PredictedSentiment   *string        `json:"predicted_sentiment"`
	PredictionConfidence *OptionalFloat `json:"prediction_confidence" swaggertype:"number"`
}

// ReviewResponse is a stored review.
type ReviewResponse struct {
	ReviewID             string    `json:"review_id"`
	Reviewer             string    `json:"reviewer"`
	Movie                string    `json:"movie"`
	Rating               *int      `json:"rating"`
	ReviewSummary        string    `json:"review_summary"`
	ReviewDate           string    `json:"review_date"`
	SpoilerTag           int       `json:"spoiler_tag"`
	ReviewDetail         string    `json:"review_detail"`
	HelpfulFrom          string    `json:"helpful_from"`
	HelpfulTo            string    `json:"helpful_to"`
	SourceMovie          string    `json:"source_movie"`
	PredictedSentiment   string    `json:"predicted_sentiment"`
	PredictionConfidence *float64  `json:"prediction_confidence"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ListReviewsQuery filters GET /api/reviews.
type ListReviewsQuery struct {
	Movie     string `query:"movie"`
	Sentiment string `query:"sentiment"`
	Sort      string `query:"sort"`
	Page      int    `query:"page"`
	PageSize  int    `query:"page_size"`
}

// ReviewListResponse is a page of reviews.
type ReviewListResponse struct {
	Items    []*ReviewResponse `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// MovieEntry is one movie of the catalogue.
type MovieEntry struct {
	Movie       string  `json:"movie"`
	ReviewCount int64   `json:"review_count"`
	AvgRating   float64 `json:"avg_rating"`
}

// DatasetStats summarizes the stored reviews.
type DatasetStats struct {
	TotalReviews          int64            `json:"total_reviews"`
	UniqueMovies          int64            `json:"unique_movies"`
	SentimentDistribution map[string]int64 `json:"sentiment_distribution"`
	AverageRating         float64          `json:"average_rating"`
}

// EnvStatusResponse reports whether the LLM credential is configured.
type EnvStatusResponse struct {
	GeminiAPIKeySet    bool   `json:"gemini_api_key_set"`
	GeminiAPIKeyPrefix string `json:"gemini_api_key_prefix"`
}
