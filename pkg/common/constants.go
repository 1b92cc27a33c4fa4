package common

const (
	CacheKeyMovies       = "catalogue.movies"
	CacheKeyDatasetStats = "catalogue.stats"

	RateLimitKeyPrefix = "cinepulse:ratelimit"

	SeedBatchSize = 1000
)

// Sentiment filter values accepted by the review listing and summarize endpoints.
const (
	SentimentFilterAll      = "all"
	SentimentFilterPositive = "positivo"
	SentimentFilterNegative = "negativo"
	SentimentFilterNeutral  = "neutro"
)
