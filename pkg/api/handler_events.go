package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/jonzim-cmd/kura/pkg/models"
)

// createEventHandler handles POST /v1/events. Single-event legacy
// path: same invariants as the batch path, no claim guard.
func (s *Server) createEventHandler(c *echo.Context) error {
	ownerID, _ := ownerFromContext(c)

	var req models.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &apiError{
			Error: "validation", Message: "request body is not a valid event", RequestID: newRequestID(),
		})
	}

	events := []models.CreateEventRequest{req}
	warnings, err := s.orchestrator.ValidateAndWarn(c.Request().Context(), ownerID, events)
	if err != nil {
		return respondError(c, err)
	}

	receipts, err := s.events.AppendAtomic(c.Request().Context(), ownerID, events)
	if err != nil {
		return respondError(c, err)
	}

	stored, err := s.events.Get(c.Request().Context(), ownerID, receipts[0].EventID)
	if err != nil {
		return respondError(c, err)
	}

	eventWarnings := make([]models.EventWarning, 0, len(warnings))
	for _, w := range warnings {
		eventWarnings = append(eventWarnings, models.EventWarning{
			Field: w.Field, Message: w.Message, Severity: w.Severity,
		})
	}

	return c.JSON(http.StatusCreated, &CreateEventResponse{
		Event:    *stored,
		Warnings: eventWarnings,
	})
}

// createEventsBatchHandler handles POST /v1/events/batch.
// All events are written in a single transaction; if any event fails
// validation or conflicts, the entire batch is rolled back.
func (s *Server) createEventsBatchHandler(c *echo.Context) error {
	ownerID, _ := ownerFromContext(c)

	var req BatchCreateEventsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &apiError{
			Error: "validation", Message: "request body is not a valid event batch", RequestID: newRequestID(),
		})
	}

	warnings, err := s.orchestrator.ValidateAndWarn(c.Request().Context(), ownerID, req.Events)
	if err != nil {
		return respondError(c, err)
	}

	receipts, err := s.events.AppendAtomic(c.Request().Context(), ownerID, req.Events)
	if err != nil {
		return respondError(c, err)
	}

	stored := make([]models.Event, 0, len(receipts))
	for _, receipt := range receipts {
		event, err := s.events.Get(c.Request().Context(), ownerID, receipt.EventID)
		if err != nil {
			return respondError(c, err)
		}
		stored = append(stored, *event)
	}

	return c.JSON(http.StatusCreated, &BatchCreateEventsResponse{
		Events:   stored,
		Warnings: warnings,
	})
}

// simulateEventsHandler handles POST /v1/events/simulate. Validates
// and predicts projection impacts; never appends.
func (s *Server) simulateEventsHandler(c *echo.Context) error {
	ownerID, _ := ownerFromContext(c)

	var req SimulateEventsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &apiError{
			Error: "validation", Message: "request body is not a valid simulate request", RequestID: newRequestID(),
		})
	}
	if len(req.Events) == 0 {
		return respondError(c, validationErr("events array must not be empty", "events",
			"Provide at least one event to simulate"))
	}

	result, err := s.orchestrator.Simulate(c.Request().Context(), ownerID, req.Events)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// listEventsHandler handles GET /v1/events with cursor pagination.
func (s *Server) listEventsHandler(c *echo.Context) error {
	ownerID, _ := ownerFromContext(c)

	params := models.ListEventsParams{
		EventType: c.QueryParam("event_type"),
		Cursor:    c.QueryParam("cursor"),
	}
	if rawLimit := c.QueryParam("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil {
			return respondError(c, validationErr("limit must be an integer", "limit", ""))
		}
		params.Limit = limit
	}
	if since := c.QueryParam("since"); since != "" {
		parsed, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return respondError(c, validationErr("since must be an RFC 3339 timestamp", "since", ""))
		}
		params.Since = &parsed
	}
	if until := c.QueryParam("until"); until != "" {
		parsed, err := time.Parse(time.RFC3339, until)
		if err != nil {
			return respondError(c, validationErr("until must be an RFC 3339 timestamp", "until", ""))
		}
		params.Until = &parsed
	}

	page, err := s.events.List(c.Request().Context(), ownerID, params)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, page)
}
