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

// ReviewHandler handles HTTP requests for stored reviews and the catalogue.
type ReviewHandler struct {
	reviewService service.ReviewService
	logger        *logger.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewService, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService, logger: logger}
}

// RegisterRoutes registers the review routes to the Echo group.
func (h *ReviewHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListReviews)
	g.POST("", h.CreateReview)
	g.GET("/:id", h.GetReview)
	g.PUT("/:id", h.UpdateReview)
	g.DELETE("/:id", h.DeleteReview)
}

// RegisterCatalogueRoutes registers the movie list and dataset stats routes.
func (h *ReviewHandler) RegisterCatalogueRoutes(g *echo.Group) {
	g.GET("/movies", h.ListMovies)
	g.GET("/stats", h.Stats)
}

// ListReviews godoc
// @Summary List reviews
// @Description List stored reviews with optional movie and sentiment filters
// @Tags reviews
// @Produce  json
// @Param   movie      query  string  false  "Movie title"
// @Param   sentiment  query  string  false  "positivo, negativo, neutro or a raw label"
// @Param   sort       query  string  false  "helpful, recent, rating_high or rating_low"
// @Param   page       query  int     false  "Page number"
// @Param   page_size  query  int     false  "Page size"
// @Success 200 {object} dto.ReviewListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reviews [get]
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	var query dto.ListReviewsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters"})
	}

	resp, err := h.reviewService.ListReviews(c.Request().Context(), query)
	if err != nil {
		h.logger.Error("Failed to list reviews", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list reviews"})
	}
	return c.JSON(http.StatusOK, resp)
}

// GetReview godoc
// @Summary Get a review by ID
// @Description Get a single stored review by its ID
// @Tags reviews
// @Produce  json
// @Param   id  path    string true    "Review ID"
// @Success 200 {object} dto.ReviewResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reviews/{id} [get]
func (h *ReviewHandler) GetReview(c echo.Context) error {
	resp, err := h.reviewService.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.reviewError(c, err, "Failed to get review")
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateReview godoc
// @Summary Create a review
// @Description Store a new review; review_id is generated when omitted
// @Tags reviews
// @Accept  json
// @Produce  json
// @Param   review  body    dto.ReviewPayload   true    "Review to create"
// @Success 201 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reviews [post]
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req dto.ReviewPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	}

	resp, err := h.reviewService.CreateReview(c.Request().Context(), &req)
	if err != nil {
		h.logger.Error("Failed to create review", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create review"})
	}
	return c.JSON(http.StatusCreated, resp)
}

// UpdateReview godoc
// @Summary Update a review
// @Description Update the fields present in the body
// @Tags reviews
// @Accept  json
// @Produce  json
// @Param   id      path    string                   true    "Review ID"
// @Param   review  body    dto.UpdateReviewRequest  true    "Fields to update"
// @Success 200 {object} dto.ReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	var req dto.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	resp, err := h.reviewService.UpdateReview(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return h.reviewError(c, err, "Failed to update review")
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Delete a review by its ID
// @Tags reviews
// @Param   id  path    string true    "Review ID"
// @Success 204 {object} nil
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	if err := h.reviewService.DeleteReview(c.Request().Context(), c.Param("id")); err != nil {
		return h.reviewError(c, err, "Failed to delete review")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListMovies godoc
// @Summary List movies
// @Description Distinct movies with their number of stored reviews
// @Tags catalogue
// @Produce  json
// @Success 200 {array} dto.MovieEntry
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/movies [get]
func (h *ReviewHandler) ListMovies(c echo.Context) error {
	movies, err := h.reviewService.ListMovies(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to list movies", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list movies"})
	}
	return c.JSON(http.StatusOK, movies)
}

// Stats godoc
// @Summary Dataset statistics
// @Description Totals, unique movies, sentiment distribution and average rating of the stored reviews
// @Tags catalogue
// @Produce  json
// @Success 200 {object} dto.DatasetStats
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/stats [get]
func (h *ReviewHandler) Stats(c echo.Context) error {
	stats, err := h.reviewService.Stats(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to compute dataset stats", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to compute stats"})
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *ReviewHandler) reviewError(c echo.Context, err error, msg string) error {
	if errors.Is(err, repository.ErrReviewNotFound) {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Review not found"})
	}
	h.logger.Error(msg, logger.StringField("review_id", c.Param("id")), logger.ErrorField(err))
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
}
