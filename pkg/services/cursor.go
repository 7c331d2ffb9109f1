package services

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/apperror"
)

type cursorData struct {
	OccurredAt time.Time
	ID         uuid.UUID
}

// encodeCursor produces base64url("timestamp\0id") — opaque to the
// client, stable for pagination.
func encodeCursor(occurredAt time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%s\x00%s", occurredAt.UTC().Format(time.RFC3339Nano), id)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(cursor string) (*cursorData, error) {
	invalid := func(message string) error {
		return &apperror.Validation{
			Message:  message,
			Field:    "cursor",
			Received: cursor,
			DocsHint: "Use the next_cursor value from a previous response",
		}
	}

	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, invalid("Invalid cursor format")
	}

	parts := strings.SplitN(string(raw), "\x00", 2)
	if len(parts) != 2 {
		return nil, invalid("Invalid cursor structure")
	}

	occurredAt, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return nil, invalid("Invalid cursor timestamp")
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return nil, invalid("Invalid cursor id")
	}

	return &cursorData{OccurredAt: occurredAt, ID: id}, nil
}
