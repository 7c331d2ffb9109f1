package masking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	hex64 := strings.Repeat("ab", 32)

	t.Run("masks confirmation tokens", func(t *testing.T) {
		token := "v1|2026-07-01T10:00:00Z|" + hex64 + "|" + hex64
		masked := Mask("token rejected: " + token)
		assert.NotContains(t, masked, hex64)
		assert.Contains(t, masked, "MASKED_TOKEN")
	})

	t.Run("masks bare signatures", func(t *testing.T) {
		masked := Mask("signature mismatch: sha256=" + hex64)
		assert.NotContains(t, masked, hex64)
	})

	t.Run("masks bearer credentials", func(t *testing.T) {
		masked := Mask("Authorization: Bearer abc.def-ghi")
		assert.NotContains(t, masked, "abc.def-ghi")
	})

	t.Run("leaves ordinary text alone", func(t *testing.T) {
		assert.Equal(t, "idempotency conflict on key set-1", Mask("idempotency conflict on key set-1"))
	})
}
