package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/google/uuid"
)

// Context keys set by the auth middleware.
const (
	contextKeyOwnerID  = "owner_id"
	contextKeyClientID = "client_id"
)

// Auth headers. The API sits behind an authenticating proxy that
// resolves the principal; X-Forwarded-User carries the owner UUID and
// X-Kura-Client-Id the optional OAuth client id used by the model
// identity fallback map.
const (
	headerForwardedUser = "X-Forwarded-User"
	headerClientID      = "X-Kura-Client-Id"
)

// requireOwner resolves the authenticated owner from proxy headers and
// stores it in the request context. Requests without a valid owner are
// rejected before any owner-scoped work happens.
func requireOwner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			raw := c.Request().Header.Get(headerForwardedUser)
			ownerID, err := uuid.Parse(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, &apiError{
					Error:     "unauthorized",
					Message:   "missing or invalid authenticated owner",
					RequestID: newRequestID(),
				})
			}

			c.Set(contextKeyOwnerID, ownerID)
			if clientID := c.Request().Header.Get(headerClientID); clientID != "" {
				c.Set(contextKeyClientID, clientID)
			}
			return next(c)
		}
	}
}

// ownerFromContext returns the authenticated owner set by requireOwner.
func ownerFromContext(c *echo.Context) (uuid.UUID, bool) {
	ownerID, ok := c.Get(contextKeyOwnerID).(uuid.UUID)
	return ownerID, ok
}

// clientIDFromContext returns the OAuth client id, if any.
func clientIDFromContext(c *echo.Context) string {
	clientID, _ := c.Get(contextKeyClientID).(string)
	return clientID
}
