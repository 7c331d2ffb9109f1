// Package contextbundle composes the ranked, budgeted read-context
// agents consume before writing, decorated with temporal grounding.
package contextbundle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/pkg/models"
	"github.com/jonzim-cmd/kura/pkg/services"
)

// Contract identifiers.
const (
	ContractVersion              = "agent_context.v12.brief_first.temporal_grounding"
	TemporalContextSchemaVersion = "temporal_context.v1"
	TemporalBasisSchemaVersion   = "temporal_basis.v1"
	DefaultAssumedTimezone       = "UTC"
)

// PayloadBudgetBytes bounds the serialized bundle. Sections past the
// budget are truncated to their name, lowest rank dropped first.
const PayloadBudgetBytes = 32 * 1024

// rankedProjections is the bundle composition order; rank 1 is most
// important and survives truncation longest.
var rankedProjections = []struct {
	Name           string
	ProjectionType string
}{
	{Name: "user_profile", ProjectionType: "user_profile"},
	{Name: "training_plan", ProjectionType: "training_plan"},
	{Name: "recent_training", ProjectionType: "training_timeline"},
	{Name: "quality_health", ProjectionType: "quality_health"},
}

// Builder assembles context bundles.
type Builder struct {
	projections *services.ProjectionService
	events      *services.EventService
}

// NewBuilder creates a Builder.
func NewBuilder(projections *services.ProjectionService, events *services.EventService) *Builder {
	return &Builder{projections: projections, events: events}
}

// Build composes the owner's context bundle.
func (b *Builder) Build(ctx context.Context, ownerID uuid.UUID, now time.Time) (*models.ContextBundle, error) {
	projectionTypes := make([]string, 0, len(rankedProjections))
	for _, entry := range rankedProjections {
		projectionTypes = append(projectionTypes, entry.ProjectionType)
	}

	available, err := b.projections.ListByTypes(ctx, ownerID, projectionTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to load context projections: %w", err)
	}
	byType := map[string]models.Projection{}
	for _, projection := range available {
		byType[projection.ProjectionType] = projection
	}

	temporal := b.buildTemporalContext(ctx, ownerID, byType, now)

	sections := make([]models.ContextSection, 0, len(rankedProjections))
	budget := PayloadBudgetBytes
	for rank, entry := range rankedProjections {
		projection, ok := byType[entry.ProjectionType]
		if !ok {
			continue
		}
		section := models.ContextSection{
			Name:           entry.Name,
			ProjectionType: entry.ProjectionType,
			Rank:           rank + 1,
			Data:           projection.Data,
		}
		cost := sectionCost(section)
		if cost > budget {
			section.Data = nil
			section.Truncated = true
			cost = sectionCost(section)
		}
		budget -= cost
		sections = append(sections, section)
	}

	return &models.ContextBundle{
		ContractVersion: ContractVersion,
		TemporalContext: temporal,
		Sections:        sections,
		PayloadBudget:   PayloadBudgetBytes,
	}, nil
}

// TemporalBasis derives the basis block a high-impact intent handshake
// must cite from a freshly built bundle.
func TemporalBasis(temporal models.TemporalContext) models.TemporalBasis {
	return models.TemporalBasis{
		SchemaVersion:  TemporalBasisSchemaVersion,
		NowUTC:         temporal.NowUTC,
		Timezone:       temporal.Timezone,
		TodayLocalDate: temporal.TodayLocalDate,
	}
}

func (b *Builder) buildTemporalContext(ctx context.Context, ownerID uuid.UUID, byType map[string]models.Projection, now time.Time) models.TemporalContext {
	timezone := DefaultAssumedTimezone
	assumed := true
	if profile, ok := byType["user_profile"]; ok {
		if configured := timezoneFromProfile(profile.Data); configured != "" {
			timezone = configured
			assumed = false
		}
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.UTC
		timezone = DefaultAssumedTimezone
		assumed = true
	}

	temporal := models.TemporalContext{
		SchemaVersion:   TemporalContextSchemaVersion,
		NowUTC:          now.UTC(),
		Timezone:        timezone,
		TimezoneAssumed: assumed,
		TodayLocalDate:  now.In(location).Format("2006-01-02"),
	}

	if lastTraining, ok := b.lastTrainingTime(ctx, ownerID); ok {
		localDate := lastTraining.In(location).Format("2006-01-02")
		temporal.LastTrainingDate = localDate
		days := int(now.Sub(lastTraining).Hours() / 24)
		if days < 0 {
			days = 0
		}
		temporal.DaysSinceLastTraining = &days
	}

	return temporal
}

func (b *Builder) lastTrainingTime(ctx context.Context, ownerID uuid.UUID) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, eventType := range []string{"session.completed", "set.logged"} {
		page, err := b.events.List(ctx, ownerID, models.ListEventsParams{
			EventType: eventType,
			Limit:     1,
		})
		if err != nil || len(page.Data) == 0 {
			continue
		}
		if occurred := page.Data[0].OccurredAt; !found || occurred.After(latest) {
			latest = occurred
			found = true
		}
	}
	return latest, found
}

func timezoneFromProfile(data map[string]any) string {
	user, ok := data["user"].(map[string]any)
	if !ok {
		return ""
	}
	prefs, ok := user["preferences"].(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"timezone", "time_zone"} {
		if configured, ok := prefs[key].(string); ok {
			if trimmed := strings.TrimSpace(configured); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

func sectionCost(section models.ContextSection) int {
	serialized, err := json.Marshal(section)
	if err != nil {
		return 0
	}
	return len(serialized)
}
