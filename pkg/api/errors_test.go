package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/apperror"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		expectCode  int
		expectError string
	}{
		{
			name:        "validation maps to 400",
			err:         &apperror.Validation{Message: "events array must not be empty", Field: "events"},
			expectCode:  http.StatusBadRequest,
			expectError: "validation",
		},
		{
			name:        "policy violation maps to 422 with its inv code",
			err:         &apperror.PolicyViolation{Code: "inv_retraction_target_required", Message: "missing target"},
			expectCode:  http.StatusUnprocessableEntity,
			expectError: "inv_retraction_target_required",
		},
		{
			name:        "idempotency conflict maps to 409",
			err:         &apperror.IdempotencyConflict{IdempotencyKey: "dup"},
			expectCode:  http.StatusConflict,
			expectError: "idempotency_conflict",
		},
		{
			name:        "forbidden maps to 403",
			err:         &apperror.Forbidden{Message: "admin only"},
			expectCode:  http.StatusForbidden,
			expectError: "forbidden",
		},
		{
			name:        "unexpected maps to 500 with generic message",
			err:         assert.AnError,
			expectCode:  http.StatusInternalServerError,
			expectError: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			errToReturn := tt.err
			e.GET("/test", func(c *echo.Context) error {
				return respondError(c, errToReturn)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectCode, rec.Code)

			var body apiError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectError, body.Error)
			assert.NotEmpty(t, body.RequestID)
		})
	}
}

func TestRequireOwner(t *testing.T) {
	e := echo.New()
	e.Use(requireOwner())
	e.GET("/v1/events", func(c *echo.Context) error {
		ownerID, ok := ownerFromContext(c)
		require.True(t, ok)
		return c.String(http.StatusOK, ownerID.String())
	})

	t.Run("valid owner header passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
		req.Header.Set(headerForwardedUser, "0191e6a2-7aaa-7bbb-8ccc-0123456789ab")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "0191e6a2-7aaa-7bbb-8ccc-0123456789ab", rec.Body.String())
	})

	t.Run("missing owner header is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage owner header is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/events", nil)
		req.Header.Set(headerForwardedUser, "not-a-uuid")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
