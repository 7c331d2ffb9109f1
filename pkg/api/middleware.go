package api

import (
	"context"
	"log/slog"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/jonzim-cmd/kura/pkg/models"
	"github.com/jonzim-cmd/kura/pkg/services"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// accessLog returns middleware that records every authenticated agent
// request into the access log the abuse gate scores. Recording is
// asynchronous and never blocks or fails the request.
func accessLog(service *services.AccessLogService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Request().URL.Path
			if !strings.HasPrefix(path, "/v1/") {
				return err
			}
			ownerID, ok := ownerFromContext(c)
			if !ok {
				return err
			}

			record := models.AccessLogRecord{
				OwnerID:        ownerID,
				Path:           path,
				Method:         c.Request().Method,
				StatusCode:     c.Response().(*echo.Response).Status,
				ResponseTimeMs: int(time.Since(start).Milliseconds()),
				OccurredAt:     start,
			}
			go func() {
				if recordErr := service.Record(context.Background(), record); recordErr != nil {
					slog.Warn("failed to record access log entry",
						"owner_id", ownerID, "path", path, "error", recordErr)
				}
			}()

			return err
		}
	}
}
