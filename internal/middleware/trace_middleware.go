package middleware

import (
	"dataMarket/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceID reuses the caller's X-Request-ID or mints one, echoes it back and
// stores it in the request context for logging.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(echo.HeaderXRequestID)
			if traceID == "" || len(traceID) > 128 {
				traceID = uuid.NewString()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, traceID)
			c.SetRequest(req.WithContext(logger.WithTraceID(req.Context(), traceID)))

			return next(c)
		}
	}
}
