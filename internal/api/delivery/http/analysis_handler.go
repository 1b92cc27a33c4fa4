package http

import (
	"errors"
	"net/http"

	"cinepulse/internal/api/dto"
	"cinepulse/internal/api/repository"
	"cinepulse/internal/api/service"
	"cinepulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

const msgMovieNotFound = "Filme não encontrado."

// AnalysisHandler handles HTTP requests for movie analysis.
type AnalysisHandler struct {
	analysisService service.AnalysisService
	logger          *logger.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService, logger *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, logger: logger}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalysisHandler) RegisterRoutes(g *echo.Group, middleware ...echo.MiddlewareFunc) {
	g.POST("/analisar", h.Analyze, middleware...)
}

// Analyze godoc
// @Summary Analyze a movie
// @Description Fetch reviews for a movie title, classify their sentiment and summarize them
// @Tags analysis
// @Accept  json
// @Produce  json
// @Param   request  body    dto.AnalyzeRequest   true    "Movie title"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /analisar [post]
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Campo 'filme' é obrigatório."})
	}

	resp, err := h.analysisService.Analyze(c.Request().Context(), req.Filme)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: msgMovieNotFound})
		}
		h.logger.Error("Failed to analyze movie", logger.StringField("filme", req.Filme), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to analyze movie"})
	}

	return c.JSON(http.StatusOK, resp)
}
