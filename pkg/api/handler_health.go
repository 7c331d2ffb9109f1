package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/jonzim-cmd/kura/pkg/database"
	"github.com/jonzim-cmd/kura/pkg/version"
)

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   "unhealthy",
			Version:  version.Full(),
			Database: dbHealth,
		})
	}

	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   "healthy",
		Version:  version.Full(),
		Database: dbHealth,
	})
}
