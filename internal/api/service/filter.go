package service

import (
	"strings"

	"cinepulse/internal/api/repository"
	"cinepulse/pkg/common"
	"cinepulse/pkg/sentiment"
)

// sentimentFilter translates a user facing sentiment filter into label sets
// for repository.ReviewFilter. "positivo" and "negativo" select every alias of
// the class, "neutro" selects every label that normalizes to neither class, and
// any other word is matched through the normalizer or as an exact label.
func sentimentFilter(n *sentiment.Normalizer, value string) (include, exclude []string) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch value {
	case "", common.SentimentFilterAll, "todos":
		return nil, nil
	case common.SentimentFilterNeutral, "neutral":
		return nil, append(n.Tokens(sentiment.Positive), n.Tokens(sentiment.Negative)...)
	case common.SentimentFilterPositive:
		return n.Tokens(sentiment.Positive), nil
	case common.SentimentFilterNegative:
		return n.Tokens(sentiment.Negative), nil
	}
	switch n.Normalize(value) {
	case sentiment.Positive:
		return n.Tokens(sentiment.Positive), nil
	case sentiment.Negative:
		return n.Tokens(sentiment.Negative), nil
	default:
		return []string{value}, nil
	}
}

func normalizeSort(sort string) string {
	switch sort {
	case repository.SortHelpful, repository.SortRecent, repository.SortRatingHigh, repository.SortRatingLow:
		return sort
	default:
		return repository.SortHelpful
	}
}
