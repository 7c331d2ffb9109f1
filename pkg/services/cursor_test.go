package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/apperror"
)

func TestCursorRoundTrip(t *testing.T) {
	occurredAt := time.Date(2026, 7, 15, 18, 30, 12, 345678000, time.UTC)
	id := uuid.New()

	encoded := encodeCursor(occurredAt, id)
	decoded, err := decodeCursor(encoded)
	require.NoError(t, err)

	assert.True(t, decoded.OccurredAt.Equal(occurredAt))
	assert.Equal(t, id, decoded.ID)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	for name, cursor := range map[string]string{
		"not base64":    "!!!",
		"no separator":  "aGVsbG8",
		"bad timestamp": "bm90LWEtdGltZQBub3QtYW4taWQ",
		"empty string":  "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decodeCursor(cursor)
			var validation *apperror.Validation
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, "cursor", validation.Field)
		})
	}
}
