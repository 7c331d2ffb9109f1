package api

import (
	"log/slog"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/jonzim-cmd/kura/pkg/models"
)

// languageModeHeader lets allowlisted developers request raw,
// unsoftened response phrasing. Everyone else is forced to user-safe.
const languageModeHeader = "x-kura-debug-language-mode"

func headerRequestsDeveloperRaw(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "raw", "developer_raw", "developer-raw", "off":
		return true
	}
	return false
}

// writeWithProofHandler handles POST /v1/agent/write-with-proof.
// Runs the full pipeline; on the first rejection nothing is appended.
func (s *Server) writeWithProofHandler(c *echo.Context) error {
	ownerID, ok := ownerFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, &apiError{
			Error: "unauthorized", Message: "missing authenticated owner", RequestID: newRequestID(),
		})
	}

	var req models.WriteWithProofRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &apiError{
			Error:     "validation",
			Message:   "request body is not valid JSON for write-with-proof",
			RequestID: newRequestID(),
		})
	}

	// Developer raw language mode: allowlist-gated, header-requested.
	modeHeader := c.Request().Header.Get(languageModeHeader)
	languageMode := "user_safe"
	if s.cfg.Process.IsDeveloperRawUser(ownerID.String()) && headerRequestsDeveloperRaw(modeHeader) {
		languageMode = "developer_raw"
		slog.Info("developer raw language mode enabled",
			"owner_id", ownerID)
	} else if headerRequestsDeveloperRaw(modeHeader) {
		slog.Warn("developer raw language mode request denied; enforcing user_safe mode",
			"owner_id", ownerID)
	}
	c.Response().Header().Set("x-kura-language-mode", languageMode)

	response, err := s.orchestrator.Execute(c.Request().Context(), ownerID, clientIDFromContext(c), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}
