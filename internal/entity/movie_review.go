package entity

import (
	"time"

	"gorm.io/datatypes"
)

// MovieReview is one review row of the movie_reviews table. Rating,
// confidence and helpfulness come from the imported dataset and may be absent.
type MovieReview struct {
	ReviewID             string         `gorm:"column:review_id;primaryKey" json:"review_id"`
	Reviewer             string         `gorm:"column:reviewer" json:"reviewer"`
	Movie                string         `gorm:"column:movie;index" json:"movie"`
	Rating               *int           `gorm:"column:rating" json:"rating"`
	ReviewSummary        string         `gorm:"column:review_summary" json:"review_summary"`
	ReviewDate           string         `gorm:"column:review_date" json:"review_date"`
	SpoilerTag           int            `gorm:"column:spoiler_tag" json:"spoiler_tag"`
	ReviewDetail         string         `gorm:"column:review_detail" json:"review_detail"`
	HelpfulFrom          string         `gorm:"column:helpful_from" json:"helpful_from"`
	HelpfulTo            string         `gorm:"column:helpful_to" json:"helpful_to"`
	SourceMovie          string         `gorm:"column:source_movie" json:"source_movie"`
	PredictedSentiment   string         `gorm:"column:predicted_sentiment;index" json:"predicted_sentiment"`
	PredictionConfidence *float64       `gorm:"column:prediction_confidence" json:"prediction_confidence"`
	Raw                  datatypes.JSON `gorm:"column:raw;type:jsonb" json:"-"`
	CreatedAt            time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the MovieReview model.
func (MovieReview) TableName() string {
	return "movie_reviews"
}

// MovieReviewCount is a distinct movie with its number of stored reviews.
type MovieReviewCount struct {
	Movie       string  `json:"movie"`
	ReviewCount int64   `json:"review_count"`
	AvgRating   float64 `json:"avg_rating"`
}

// LabelCount is a predicted_sentiment value with its frequency.
type LabelCount struct {
	Label string `gorm:"column:predicted_sentiment" json:"label"`
	Count int64  `json:"count"`
}
