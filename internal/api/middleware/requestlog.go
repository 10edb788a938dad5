package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// healthLogPaths are probe paths whose repeated successes are not logged.
// Only the first success after startup or after a failure produces a line;
// failures are always logged at Warn.
var healthLogPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured
// fields. It generates a request ID if none is provided and propagates it
// through the response header and echo context.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var mu sync.Mutex
	lastHealthOK := make(map[string]bool)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status
			fields := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}

			if _, probe := healthLogPaths[path]; probe {
				ok := status >= 200 && status < 300

				mu.Lock()
				wasOK := lastHealthOK[path]
				lastHealthOK[path] = ok
				mu.Unlock()

				switch {
				case !ok:
					log.Warn("request", fields...)
				case !wasOK:
					log.Info("request", fields...)
				}
				return err
			}

			log.Info("request", fields...)

			return err
		}
	}
}
