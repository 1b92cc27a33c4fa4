package service

import (
	"math"
	"sort"
	"strings"

	"cinepulse/internal/api/dto"
	"cinepulse/pkg/sentiment"
)

const (
	topHelpfulLimit   = 3
	anonymousReviewer = "Anônimo"
)

// ApprovalPct is positive / (positive + negative) * 100 rounded to one
// decimal, or 0 when nothing was classified.
func ApprovalPct(positive, negative int) float64 {
	total := positive + negative
	if total <= 0 || positive < 0 || negative < 0 {
		return 0
	}
	return round(float64(positive)/float64(total)*100, 1)
}

// Aggregate combines per-language tallies with the descriptive statistics of
// records. Records are read only.
func Aggregate(tallies map[dto.Language]sentiment.Tally, records []dto.ReviewRecord) dto.AggregateStats {
	stats := dto.AggregateStats{
		ByLanguage:            make(map[dto.Language]sentiment.Tally, len(tallies)),
		ReviewsAnalyzed:       len(records),
		RatingDistribution:    map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		SentimentDistribution: make(map[string]int),
		TopHelpfulReviewers:   []string{},
	}
	for lang, t := range tallies {
		stats.ByLanguage[lang] = t
		stats.Tally = stats.Tally.Add(t)
	}
	stats.ApprovalPct = ApprovalPct(stats.Tally.Positive, stats.Tally.Negative)

	var ratingSum, confidenceSum float64
	type helpful struct {
		reviewer string
		ratio    float64
	}
	var ranked []helpful

	for _, rec := range records {
		if rec.Rating.Valid && rec.Rating.Value >= 1 && rec.Rating.Value <= 5 {
			stats.RatingDistribution[rec.Rating.Value]++
			stats.RatedCount++
			ratingSum += float64(rec.Rating.Value)
		}
		if label := strings.TrimSpace(rec.SentimentLabel); label != "" {
			stats.SentimentDistribution[label]++
		}
		if rec.Confidence.Valid {
			confidenceSum += rec.Confidence.Value
		}
		if rec.Spoiler {
			stats.SpoilerCount++
		}
		if rec.HelpfulFrom.Valid && rec.HelpfulTo.Valid && rec.HelpfulTo.Value > 0 {
			name := strings.TrimSpace(rec.Reviewer)
			if name == "" {
				name = anonymousReviewer
			}
			ranked = append(ranked, helpful{
				reviewer: name,
				ratio:    float64(rec.HelpfulFrom.Value) / float64(rec.HelpfulTo.Value),
			})
		}
	}

	if stats.RatedCount > 0 {
		stats.AverageRating = round(ratingSum/float64(stats.RatedCount), 2)
	}
	if len(records) > 0 {
		stats.AverageConfidence = round(confidenceSum/float64(len(records)), 3)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ratio > ranked[j].ratio
	})
	for i := 0; i < len(ranked) && i < topHelpfulLimit; i++ {
		stats.TopHelpfulReviewers = append(stats.TopHelpfulReviewers, ranked[i].reviewer)
	}
	return stats
}

func round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
