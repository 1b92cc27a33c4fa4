package dto

import (
	"cinepulse/pkg/sentiment"
)

// Language is a supported review language.
type Language = sentiment.Language

// ReviewRecord is a single review flowing through the analysis pipeline.
// Network sources fill Text and Language only; stored reviews fill the rest.
type ReviewRecord struct {
	Text           string
	Language       Language
	Summary        string
	Rating         OptionalInt
	SentimentLabel string
	Confidence     OptionalFloat
	Spoiler        bool
	HelpfulFrom    OptionalInt
	HelpfulTo      OptionalInt
	Reviewer       string
	Date           string
}

// MovieMetadata describes the resolved movie. All fields besides the titles are optional.
type MovieMetadata struct {
	LocalTitle    string `json:"titulo_br"`
	OriginalTitle string `json:"titulo_original"`
	ReleaseYear   string `json:"data_lancamento,omitempty"`
	PosterURL     string `json:"poster,omitempty"`
}

// SourceResult is what a review source returns for one title.
type SourceResult struct {
	Reviews  map[Language][]ReviewRecord
	Metadata *MovieMetadata
}

// Empty reports whether no language has any review.
func (r *SourceResult) Empty() bool {
	if r == nil {
		return true
	}
	for _, list := range r.Reviews {
		if len(list) > 0 {
			return false
		}
	}
	return true
}

// Texts returns the review texts for lang.
func (r *SourceResult) Texts(lang Language) []string {
	list := r.Reviews[lang]
	texts := make([]string, 0, len(list))
	for _, rec := range list {
		texts = append(texts, rec.Text)
	}
	return texts
}

// AggregateStats is the derived statistics snapshot of one request.
type AggregateStats struct {
	Tally                 sentiment.Tally
	ByLanguage            map[Language]sentiment.Tally
	ApprovalPct           float64
	ReviewsAnalyzed       int
	RatingDistribution    map[int]int
	RatedCount            int
	AverageRating         float64
	SentimentDistribution map[string]int
	AverageConfidence     float64
	SpoilerCount          int
	TopHelpfulReviewers   []string
}
