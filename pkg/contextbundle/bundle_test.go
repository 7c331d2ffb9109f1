package contextbundle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonzim-cmd/kura/pkg/models"
)

func TestTemporalBasis(t *testing.T) {
	now := time.Date(2026, 7, 20, 6, 30, 0, 0, time.UTC)
	temporal := models.TemporalContext{
		SchemaVersion:  TemporalContextSchemaVersion,
		NowUTC:         now,
		Timezone:       "Europe/Berlin",
		TodayLocalDate: "2026-07-20",
	}

	basis := TemporalBasis(temporal)
	assert.Equal(t, TemporalBasisSchemaVersion, basis.SchemaVersion)
	assert.Equal(t, now, basis.NowUTC)
	assert.Equal(t, "Europe/Berlin", basis.Timezone)
	assert.Equal(t, "2026-07-20", basis.TodayLocalDate)
}

func TestTimezoneFromProfile(t *testing.T) {
	t.Run("reads configured timezone", func(t *testing.T) {
		data := map[string]any{
			"user": map[string]any{
				"preferences": map[string]any{"timezone": "Europe/Berlin"},
			},
		}
		assert.Equal(t, "Europe/Berlin", timezoneFromProfile(data))
	})

	t.Run("accepts the time_zone spelling", func(t *testing.T) {
		data := map[string]any{
			"user": map[string]any{
				"preferences": map[string]any{"time_zone": "America/New_York"},
			},
		}
		assert.Equal(t, "America/New_York", timezoneFromProfile(data))
	})

	t.Run("missing preferences yield empty", func(t *testing.T) {
		assert.Empty(t, timezoneFromProfile(map[string]any{}))
	})
}

func TestSectionCost(t *testing.T) {
	small := models.ContextSection{Name: "user_profile", ProjectionType: "user_profile", Rank: 1}
	large := small
	large.Data = map[string]any{"blob": string(make([]byte, 4096))}

	assert.Greater(t, sectionCost(large), sectionCost(small))
}
