package config

import (
	"fmt"
	"time"

	"cinepulse/pkg/config"
)

// TMDB holds the movie database API configuration.
type TMDB struct {
	APIKey          string            `mapstructure:"api_key"`
	BaseURL         string            `mapstructure:"base_url"`
	ImageBaseURL    string            `mapstructure:"image_base_url"`
	SearchLocales   []string          `mapstructure:"search_locales"`
	ReviewLocales   map[string]string `mapstructure:"review_locales"`
	MinReviewLength int               `mapstructure:"min_review_length"`
	HTTPTimeout     time.Duration     `mapstructure:"http_timeout"`
	MaxRetries      int               `mapstructure:"max_retries"`
	RetryInterval   time.Duration     `mapstructure:"retry_interval"`
}

// AdoroCinema holds the optional Portuguese review scraper configuration.
type AdoroCinema struct {
	Enabled         bool          `mapstructure:"enabled"`
	BaseURL         string        `mapstructure:"base_url"`
	UserAgent       string        `mapstructure:"user_agent"`
	MinReviewLength int           `mapstructure:"min_review_length"`
	MaxReviews      int           `mapstructure:"max_reviews"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string        `mapstructure:"api_key"`
	Model               string        `mapstructure:"model"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int           `mapstructure:"max_token_per_minute"`
	Temperature         float32       `mapstructure:"temperature"`
	TopP                float32       `mapstructure:"top_p"`
	TopK                float32       `mapstructure:"top_k"`
	MaxOutputTokens     int32         `mapstructure:"max_output_tokens"`
	DisableSafety       bool          `mapstructure:"disable_safety"`
	Timeout             time.Duration `mapstructure:"timeout"`
}

// SentimentModel points at a classifier artifact or inference endpoint.
type SentimentModel struct {
	ArtifactPath string        `mapstructure:"artifact_path"`
	Endpoint     string        `mapstructure:"endpoint"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// Sentiment holds classifier configuration keyed by language code.
type Sentiment struct {
	Models  map[string]SentimentModel `mapstructure:"models"`
	Aliases map[string]string         `mapstructure:"aliases"`
}

// Analysis holds pipeline tuning knobs.
type Analysis struct {
	MaxPromptReviews int `mapstructure:"max_prompt_reviews"`
	DefaultLimit     int `mapstructure:"default_limit"`
	MaxLimit         int `mapstructure:"max_limit"`
}

// RateLimit holds inbound rate-limit settings for the analysis endpoints.
type RateLimit struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// Cache holds catalogue cache settings.
type Cache struct {
	TTL          time.Duration `mapstructure:"ttl"`
	WarmSchedule string        `mapstructure:"warm_schedule"`
}

// Config holds the full configuration for the API service.
type Config struct {
	App         config.App      `mapstructure:"app"`
	Logger      config.Logger   `mapstructure:"logger"`
	Database    config.Database `mapstructure:"database"`
	Redis       config.Redis    `mapstructure:"redis"`
	API         config.API      `mapstructure:"api"`
	TMDB        TMDB            `mapstructure:"tmdb"`
	AdoroCinema AdoroCinema     `mapstructure:"adorocinema"`
	Gemini      Gemini          `mapstructure:"gemini"`
	Sentiment   Sentiment       `mapstructure:"sentiment"`
	Analysis    Analysis        `mapstructure:"analysis"`
	RateLimit   RateLimit       `mapstructure:"rate_limit"`
	Cache       Cache           `mapstructure:"cache"`
}

var envBindings = map[string]string{
	"tmdb.api_key":   "TMDB_API_KEY",
	"gemini.api_key": "GEMINI_API_KEY",
	"database.url":   "DATABASE_URL",
}

// Load loads the API configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg, envBindings); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills zero values with working defaults.
func (c *Config) ApplyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "cinepulse"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.API.Port == 0 {
		c.API.Port = 5000
	}
	if len(c.API.AllowedOrigins) == 0 {
		c.API.AllowedOrigins = []string{"*"}
	}
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = "https://api.themoviedb.org/3"
	}
	if c.TMDB.ImageBaseURL == "" {
		c.TMDB.ImageBaseURL = "https://image.tmdb.org/t/p/w500"
	}
	if len(c.TMDB.SearchLocales) == 0 {
		c.TMDB.SearchLocales = []string{"pt-BR", "en-US"}
	}
	if len(c.TMDB.ReviewLocales) == 0 {
		c.TMDB.ReviewLocales = map[string]string{"en": "en-US", "pt": "pt-BR"}
	}
	if c.TMDB.MinReviewLength == 0 {
		c.TMDB.MinReviewLength = 10
	}
	if c.TMDB.HTTPTimeout == 0 {
		c.TMDB.HTTPTimeout = 10 * time.Second
	}
	if c.TMDB.RetryInterval == 0 {
		c.TMDB.RetryInterval = 500 * time.Millisecond
	}
	if c.AdoroCinema.BaseURL == "" {
		c.AdoroCinema.BaseURL = "https://www.adorocinema.com"
	}
	if c.AdoroCinema.MinReviewLength == 0 {
		c.AdoroCinema.MinReviewLength = 30
	}
	if c.AdoroCinema.MaxReviews == 0 {
		c.AdoroCinema.MaxReviews = 10
	}
	if c.AdoroCinema.HTTPTimeout == 0 {
		c.AdoroCinema.HTTPTimeout = 10 * time.Second
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.MaxRequestPerMinute == 0 {
		c.Gemini.MaxRequestPerMinute = 10
	}
	if c.Gemini.Temperature == 0 {
		c.Gemini.Temperature = 0.7
	}
	if c.Gemini.TopP == 0 {
		c.Gemini.TopP = 0.95
	}
	if c.Gemini.TopK == 0 {
		c.Gemini.TopK = 40
	}
	if c.Gemini.MaxOutputTokens == 0 {
		c.Gemini.MaxOutputTokens = 8192
	}
	if c.Gemini.Timeout == 0 {
		c.Gemini.Timeout = 60 * time.Second
	}
	if c.Analysis.MaxPromptReviews == 0 {
		c.Analysis.MaxPromptReviews = 15
	}
	if c.Analysis.DefaultLimit == 0 {
		c.Analysis.DefaultLimit = 25
	}
	if c.Analysis.MaxLimit == 0 {
		c.Analysis.MaxLimit = 100
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 20
	}
	if c.RateLimit.Window == 0 {
		c.RateLimit.Window = time.Minute
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 5 * time.Minute
	}
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	for lang := range c.TMDB.ReviewLocales {
		if lang != "en" && lang != "pt" {
			return fmt.Errorf("tmdb.review_locales: unsupported language %q", lang)
		}
	}
	for lang := range c.Sentiment.Models {
		if lang != "en" && lang != "pt" {
			return fmt.Errorf("sentiment.models: unsupported language %q", lang)
		}
	}
	if c.RateLimit.Window < time.Second {
		return fmt.Errorf("rate_limit.window must be at least 1s, got %s", c.RateLimit.Window)
	}
	if c.Analysis.MaxLimit < c.Analysis.DefaultLimit {
		return fmt.Errorf("analysis.max_limit (%d) below default_limit (%d)", c.Analysis.MaxLimit, c.Analysis.DefaultLimit)
	}
	return nil
}
