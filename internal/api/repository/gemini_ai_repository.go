package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cinepulse/internal/api/config"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/ratelimit"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// ContentGenerator is the part of the genai client used here. *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	CountTokens(ctx context.Context, model string, contents []*genai.Content, config *genai.CountTokensConfig) (*genai.CountTokensResponse, error)
}

var errEmptyGeneration = errors.New("gemini returned no text")

// geminiAIRepository is an implementation of TextGenerator that uses the Google Gemini API.
type geminiAIRepository struct {
	cfg            config.Gemini
	logger         *logger.Logger
	models         ContentGenerator
	requestLimiter *rate.Limiter
	tokenLimiter   *ratelimit.TokenLimiter
}

// NewGeminiAIRepository creates a new instance of geminiAIRepository. models may
// be nil when no API key is configured; Configured then reports false.
func NewGeminiAIRepository(cfg config.Gemini, log *logger.Logger, models ContentGenerator) TextGenerator {
	limit := rate.Inf
	if cfg.MaxRequestPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.MaxRequestPerMinute))
	}
	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		models:         models,
		requestLimiter: rate.NewLimiter(limit, 1),
		tokenLimiter:   ratelimit.NewTokenLimiter(cfg.MaxTokenPerMinute),
	}
}

func (r *geminiAIRepository) Configured() bool {
	return strings.TrimSpace(r.cfg.APIKey) != "" && r.models != nil
}

// Generate sends prompt to the configured model and returns the raw text answer.
func (r *geminiAIRepository) Generate(ctx context.Context, prompt string) (string, error) {
	if !r.Configured() {
		return "", errors.New("gemini api key not configured")
	}
	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	if r.cfg.MaxTokenPerMinute > 0 {
		tokenResp, err := r.models.CountTokens(ctx, r.cfg.Model, contents, nil)
		if err != nil {
			return "", fmt.Errorf("failed to count tokens: %w", err)
		}
		r.logger.Debug("Gemini token count",
			logger.IntField("total_tokens", int(tokenResp.TotalTokens)),
			logger.IntField("remaining", r.tokenLimiter.GetRemaining()),
		)
		if err := r.tokenLimiter.Wait(ctx, int(tokenResp.TotalTokens)); err != nil {
			return "", fmt.Errorf("failed to wait for token limit: %w", err)
		}
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("failed to wait for request limit: %w", err)
	}

	start := time.Now()
	resp, err := r.models.GenerateContent(ctx, r.cfg.Model, contents, r.generationConfig())
	if err != nil {
		r.logger.Error("Failed to send request to Gemini API",
			logger.ErrorField(err),
			logger.Field("latency", time.Since(start)))
		return "", fmt.Errorf("failed to send request to Gemini API: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errEmptyGeneration
	}
	r.logger.Debug("Gemini response received",
		logger.IntField("chars", len(text)),
		logger.Field("latency", time.Since(start)))
	return text, nil
}

func (r *geminiAIRepository) generationConfig() *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(r.cfg.Temperature),
		TopP:            genai.Ptr(r.cfg.TopP),
		TopK:            genai.Ptr(r.cfg.TopK),
		MaxOutputTokens: r.cfg.MaxOutputTokens,
	}
	if r.cfg.DisableSafety {
		for _, category := range []genai.HarmCategory{
			genai.HarmCategoryHarassment,
			genai.HarmCategoryHateSpeech,
			genai.HarmCategorySexuallyExplicit,
			genai.HarmCategoryDangerousContent,
		} {
			cfg.SafetySettings = append(cfg.SafetySettings, &genai.SafetySetting{
				Category:  category,
				Threshold: genai.HarmBlockThresholdBlockNone,
			})
		}
	}
	return cfg
}
