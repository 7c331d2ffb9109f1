package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/apperror"
	"github.com/jonzim-cmd/kura/pkg/masking"
	"github.com/jonzim-cmd/kura/pkg/services"
)

// apiError is the wire error shape.
type apiError struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Field     string `json:"field,omitempty"`
	Received  any    `json:"received,omitempty"`
	DocsHint  string `json:"docs_hint,omitempty"`
	RequestID string `json:"request_id"`
}

func validationErr(message, field, docsHint string) error {
	return &apperror.Validation{Message: message, Field: field, DocsHint: docsHint}
}

func newRequestID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// respondError maps pipeline errors to fixed status codes and the wire
// error shape. Attestation and confirmation failures arrive here as
// Validation errors whose Received carries the reason codes.
func respondError(c *echo.Context, err error) error {
	requestID := newRequestID()

	var validation *apperror.Validation
	if errors.As(err, &validation) {
		return c.JSON(http.StatusBadRequest, &apiError{
			Error:     apperror.CodeValidation,
			Message:   validation.Message,
			Field:     validation.Field,
			Received:  validation.Received,
			DocsHint:  validation.DocsHint,
			RequestID: requestID,
		})
	}

	var policy *apperror.PolicyViolation
	if errors.As(err, &policy) {
		return c.JSON(http.StatusUnprocessableEntity, &apiError{
			Error:     policy.Code,
			Message:   policy.Message,
			Field:     policy.Field,
			Received:  policy.Received,
			DocsHint:  policy.DocsHint,
			RequestID: requestID,
		})
	}

	var idempotency *apperror.IdempotencyConflict
	if errors.As(err, &idempotency) {
		return c.JSON(http.StatusConflict, &apiError{
			Error:     apperror.CodeIdempotencyConflict,
			Message:   "An event with this idempotency_key already exists for this owner.",
			Field:     "metadata.idempotency_key",
			Received:  idempotency.IdempotencyKey,
			DocsHint:  "Re-submitting an identical write is safe; the original receipts remain valid.",
			RequestID: requestID,
		})
	}

	var forbidden *apperror.Forbidden
	if errors.As(err, &forbidden) {
		return c.JSON(http.StatusForbidden, &apiError{
			Error:     apperror.CodeForbidden,
			Message:   forbidden.Message,
			RequestID: requestID,
		})
	}

	var conflict *apperror.Conflict
	if errors.As(err, &conflict) {
		return c.JSON(http.StatusConflict, &apiError{
			Error:     apperror.CodeConflict,
			Message:   conflict.Message,
			RequestID: requestID,
		})
	}

	if errors.Is(err, services.ErrNotFound) {
		return c.JSON(http.StatusNotFound, &apiError{
			Error:     apperror.CodeNotFound,
			Message:   "resource not found",
			RequestID: requestID,
		})
	}
	var notFound *apperror.NotFound
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, &apiError{
			Error:     apperror.CodeNotFound,
			Message:   notFound.Error(),
			RequestID: requestID,
		})
	}

	// Unexpected error: log the cause, surface a generic message.
	slog.Error("Unexpected pipeline error",
		"error", masking.Mask(err.Error()), "request_id", requestID)
	return c.JSON(http.StatusInternalServerError, &apiError{
		Error:     apperror.CodeInternal,
		Message:   "internal server error",
		RequestID: requestID,
	})
}
