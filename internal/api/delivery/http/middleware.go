package http

import (
	"context"
	"net/http"

	"cinepulse/internal/api/dto"
	"cinepulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Limiter decides whether a client may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects clients over the limit with 429. Limiter errors let the
// request through.
func RateLimit(limiter Limiter, log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			allowed, err := limiter.Allow(c.Request().Context(), ip)
			if err != nil {
				log.Warn("Rate limiter unavailable, allowing request",
					logger.StringField("ip", ip),
					logger.ErrorField(err))
				return next(c)
			}
			if !allowed {
				return c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "Too many requests, try again later"})
			}
			return next(c)
		}
	}
}
