package service

import (
	"context"
	"encoding/json"
	"strings"

	"cinepulse/internal/api/dto"
	"cinepulse/internal/api/repository"
	"cinepulse/pkg/logger"
)

// SummarizerService turns a prompt into a qualitative summary. It never fails:
// every problem is reported through the result status.
type SummarizerService interface {
	Summarize(ctx context.Context, prompt string) dto.SummaryResult
	Configured() bool
}

// NewSummarizerService creates a new summarizer backed by generator.
func NewSummarizerService(generator repository.TextGenerator, logger *logger.Logger) SummarizerService {
	return &summarizerService{
		generator: generator,
		logger:    logger,
	}
}

type summarizerService struct {
	generator repository.TextGenerator
	logger    *logger.Logger
}

func (s *summarizerService) Configured() bool {
	return s.generator != nil && s.generator.Configured()
}

// Summarize runs the prompt through the model and decodes the answer.
func (s *summarizerService) Summarize(ctx context.Context, prompt string) dto.SummaryResult {
	if !s.Configured() {
		return dto.SummaryResult{Status: dto.SummaryNotConfigured, Message: dto.MessageNotConfigured}
	}
	if strings.TrimSpace(prompt) == "" {
		return dto.SummaryResult{Status: dto.SummaryInsufficientData, Message: dto.MessageInsufficientData}
	}

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("Summary generation failed", logger.ErrorField(err))
		return dto.SummaryResult{Status: dto.SummaryUnavailable, Message: dto.MessageUnavailable}
	}

	var analysis dto.ReviewAnalysis
	if err := json.Unmarshal([]byte(extractJSON(text)), &analysis); err != nil || strings.TrimSpace(analysis.ResumoExecutivo) == "" {
		s.logger.Warn("Failed to decode structured summary, returning raw text",
			logger.ErrorField(err),
			logger.IntField("chars", len(text)))
		return dto.SummaryResult{
			Status:   dto.SummaryFallback,
			Fallback: &dto.FallbackAnalysis{ResumoExecutivo: text, Error: dto.FallbackErrorMarker},
		}
	}
	return dto.SummaryResult{Status: dto.SummaryOK, Analysis: &analysis}
}

// extractJSON strips a leading and a trailing markdown code fence
// independently of each other.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimPrefix(content, "json")
		content = strings.TrimPrefix(content, "JSON")
		content = strings.TrimSpace(content)
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
