package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Logger attaches a request-scoped zerolog logger carrying a request id, so
// downstream layers can log with log.Ctx(ctx).
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := uuid.New().String()

		ctx := c.Request().Context()

		logger := log.With().Str("request_id", requestID).Logger()
		ctx = logger.WithContext(ctx)

		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
