package http

import (
	"errors"
	"net/http"
	"strings"

	"cinepulse/internal/api/dto"
	"cinepulse/internal/api/repository"
	"cinepulse/internal/api/service"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/utils"

	"github.com/labstack/echo/v4"
)

// SummaryHandler handles HTTP requests for AI summaries.
type SummaryHandler struct {
	summaryService service.SummaryService
	geminiAPIKey   string
	logger         *logger.Logger
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService service.SummaryService, geminiAPIKey string, logger *logger.Logger) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService, geminiAPIKey: geminiAPIKey, logger: logger}
}

// RegisterRoutes registers the summary routes to the Echo group.
func (h *SummaryHandler) RegisterRoutes(g *echo.Group, middleware ...echo.MiddlewareFunc) {
	g.POST("/summarize", h.Summarize, middleware...)
	g.GET("/test-env", h.TestEnv)
}

// Summarize godoc
// @Summary Summarize reviews
// @Description Build an AI summary from the given reviews or from the stored reviews of the movie
// @Tags summary
// @Accept  json
// @Produce  json
// @Param   request  body    dto.SummarizeRequest   true    "Movie and selection parameters"
// @Success 200 {object} dto.SummarizeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/summarize [post]
func (h *SummaryHandler) Summarize(c echo.Context) error {
	var req dto.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "movie_title is required"})
	}

	resp, err := h.summaryService.Summarize(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No reviews found for movie"})
		}
		h.logger.Error("Failed to summarize reviews", logger.StringField("movie", req.MovieTitle), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to summarize reviews"})
	}
	return c.JSON(http.StatusOK, resp)
}

// TestEnv godoc
// @Summary Check LLM configuration
// @Description Report whether the Gemini API key is configured
// @Tags summary
// @Produce  json
// @Success 200 {object} dto.EnvStatusResponse
// @Router /api/test-env [get]
func (h *SummaryHandler) TestEnv(c echo.Context) error {
	key := strings.TrimSpace(h.geminiAPIKey)
	return c.JSON(http.StatusOK, dto.EnvStatusResponse{
		GeminiAPIKeySet:    key != "",
		GeminiAPIKeyPrefix: utils.FirstRunes(key, 5),
	})
}
