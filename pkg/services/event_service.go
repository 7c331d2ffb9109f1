package services

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/ent"
	"github.com/jonzim-cmd/kura/ent/event"
	"github.com/jonzim-cmd/kura/pkg/apperror"
	"github.com/jonzim-cmd/kura/pkg/database"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// MaxBatchSize bounds a single atomic append.
const MaxBatchSize = 100

// EventService is the durable event-log layer. It owns atomic append,
// cursor-paginated reads, and the aggregate queries the tier engine
// needs. Semantic validation is the invariant validator's job; this
// layer only enforces batch bounds and the idempotency contract.
type EventService struct {
	client *database.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *database.Client) *EventService {
	return &EventService{client: client}
}

// AppendAtomic inserts all events in a single owner-scoped transaction.
// On a unique violation of (owner_id, idempotency_key) the entire batch
// fails with an IdempotencyConflict naming the colliding key. Receipts
// mirror submission order.
func (s *EventService) AppendAtomic(httpCtx context.Context, ownerID uuid.UUID, events []models.CreateEventRequest) ([]models.WriteReceipt, error) {
	if len(events) == 0 {
		return nil, &apperror.Validation{
			Message:  "events array must not be empty",
			Field:    "events",
			DocsHint: "Provide at least one event in the batch",
		}
	}
	if len(events) > MaxBatchSize {
		return nil, &apperror.Validation{
			Message:  fmt.Sprintf("Batch size %d exceeds maximum of %d", len(events), MaxBatchSize),
			Field:    "events",
			Received: len(events),
			DocsHint: fmt.Sprintf("Split large batches into chunks of %d or fewer", MaxBatchSize),
		}
	}

	// Critical write: decouple from the HTTP context deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	idempotencyKeys := make([]string, 0, len(events))
	for _, req := range events {
		idempotencyKeys = append(idempotencyKeys, req.Metadata.IdempotencyKey)
	}

	receipts := make([]models.WriteReceipt, 0, len(events))
	err := withOwnerScope(ctx, s.client.Client, ownerID, func(tx *ent.Tx) error {
		builders := make([]*ent.EventCreate, 0, len(events))
		for _, req := range events {
			id, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("failed to allocate event id: %w", err)
			}
			builders = append(builders, tx.Event.Create().
				SetID(id).
				SetOwnerID(ownerID).
				SetOccurredAt(req.Timestamp).
				SetEventType(req.EventType).
				SetData(req.Data).
				SetMetadata(metadataToMap(req.Metadata)).
				SetIdempotencyKey(req.Metadata.IdempotencyKey))
		}

		created, err := tx.Event.CreateBulk(builders...).Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return &apperror.IdempotencyConflict{
					IdempotencyKey: conflictingKey(err, idempotencyKeys),
				}
			}
			return fmt.Errorf("failed to append events: %w", err)
		}

		for _, row := range created {
			receipts = append(receipts, models.WriteReceipt{
				EventID:        row.ID,
				EventType:      row.EventType,
				IdempotencyKey: row.IdempotencyKey,
			})
		}
		return nil
	})
	if err != nil {
		var conflict *apperror.IdempotencyConflict
		if errors.As(err, &conflict) && conflict.IdempotencyKey == "unknown" {
			// Driver error text does not carry the key value; look up
			// which submitted key is already stored for this owner.
			_ = withOwnerScope(ctx, s.client.Client, ownerID, func(tx *ent.Tx) error {
				existing, lookupErr := tx.Event.Query().
					Where(event.OwnerIDEQ(ownerID), event.IdempotencyKeyIn(idempotencyKeys...)).
					First(ctx)
				if lookupErr == nil {
					conflict.IdempotencyKey = existing.IdempotencyKey
				}
				return lookupErr
			})
		}
		return nil, err
	}

	return receipts, nil
}

// List returns events ordered by (occurred_at desc, id desc) with an
// opaque cursor over the last (occurred_at, id) pair.
func (s *EventService) List(ctx context.Context, ownerID uuid.UUID, params models.ListEventsParams) (models.PaginatedEvents, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	// Fetch one extra row to determine has_more.
	fetchLimit := limit + 1

	var cursor *cursorData
	if params.Cursor != "" {
		decoded, err := decodeCursor(params.Cursor)
		if err != nil {
			return models.PaginatedEvents{}, err
		}
		cursor = decoded
	}

	var rows []*ent.Event
	err := withOwnerScope(ctx, s.client.Client, ownerID, func(tx *ent.Tx) error {
		query := tx.Event.Query().
			Where(event.OwnerIDEQ(ownerID))

		if params.EventType != "" {
			query = query.Where(event.EventTypeEQ(params.EventType))
		}
		if params.Since != nil {
			query = query.Where(event.OccurredAtGTE(*params.Since))
		}
		if params.Until != nil {
			query = query.Where(event.OccurredAtLT(*params.Until))
		}
		if cursor != nil {
			// Row-wise (occurred_at, id) < (cursor.ts, cursor.id).
			query = query.Where(event.Or(
				event.OccurredAtLT(cursor.OccurredAt),
				event.And(
					event.OccurredAtEQ(cursor.OccurredAt),
					event.IDLT(cursor.ID),
				),
			))
		}

		var err error
		rows, err = query.
			Order(ent.Desc(event.FieldOccurredAt), ent.Desc(event.FieldID)).
			Limit(fetchLimit).
			All(ctx)
		return err
	})
	if err != nil {
		return models.PaginatedEvents{}, fmt.Errorf("failed to list events: %w", err)
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	result := models.PaginatedEvents{
		Data:    make([]models.Event, 0, len(rows)),
		HasMore: hasMore,
	}
	for _, row := range rows {
		result.Data = append(result.Data, rowToEvent(row))
	}
	if hasMore && len(result.Data) > 0 {
		last := result.Data[len(result.Data)-1]
		result.NextCursor = encodeCursor(last.OccurredAt, last.ID)
	}

	return result, nil
}

// Get returns a single event under the owner scope.
func (s *EventService) Get(ctx context.Context, ownerID, eventID uuid.UUID) (*models.Event, error) {
	var row *ent.Event
	err := withOwnerScope(ctx, s.client.Client, ownerID, func(tx *ent.Tx) error {
		var err error
		row, err = tx.Event.Query().
			Where(event.OwnerIDEQ(ownerID), event.IDEQ(eventID)).
			Only(ctx)
		return err
	})
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	evt := rowToEvent(row)
	return &evt, nil
}

// CountByOwner returns the owner's total event count.
func (s *EventService) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := withOwnerScope(ctx, s.client.Client, ownerID, func(tx *ent.Tx) error {
		var err error
		count, err = tx.Event.Query().
			Where(event.OwnerIDEQ(ownerID)).
			Count(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}

// KnownExerciseIDs returns the owner's distinct, normalized exercise
// ids. Used by the similarity soft check.
func (s *EventService) KnownExerciseIDs(ctx context.Context, ownerID uuid.UUID) (map[string]struct{}, error) {
	rows, err := s.client.DB().QueryContext(ctx,
		`SELECT DISTINCT lower(trim(data->>'exercise_id'))
		 FROM events
		 WHERE owner_id = $1
		   AND data->>'exercise_id' IS NOT NULL
		   AND trim(data->>'exercise_id') != ''`,
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exercise ids: %w", err)
	}
	defer rows.Close()

	known := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan exercise id: %w", err)
		}
		known[id] = struct{}{}
	}
	return known, rows.Err()
}

// TierTelemetry aggregates quality.save_claim.checked events for the
// capability tier engine: sample count, severity-weighted mismatch sum,
// and the most recently recorded tier. Events whose effective quality
// status was degraded are excluded; infrastructure-level uncertainty
// markers suppress the weight to zero.
func (s *EventService) TierTelemetry(ctx context.Context, ownerID uuid.UUID, modelIdentity string, lookbackDays int) (sampleCount int64, weightedSum float64, previousTier string, err error) {
	db := s.client.DB()

	row := db.QueryRowContext(ctx,
		`SELECT
			COUNT(*)::BIGINT,
			COALESCE(SUM(
				CASE
					WHEN COALESCE(data->'uncertainty_markers', '[]'::jsonb) ? 'write_receipt_incomplete'
					     OR COALESCE(data->'uncertainty_markers', '[]'::jsonb) ? 'read_after_write_unverified'
						THEN 0.0
					WHEN (data->>'mismatch_weight') ~ '^-?[0-9]+(\.[0-9]+)?$'
						THEN GREATEST(0.0, LEAST(1.0, (data->>'mismatch_weight')::DOUBLE PRECISION))
					WHEN LOWER(COALESCE(data->>'mismatch_detected', 'false')) = 'true'
						THEN 1.0
					ELSE 0.0
				END
			), 0.0)::DOUBLE PRECISION
		FROM events
		WHERE owner_id = $1
		  AND event_type = 'quality.save_claim.checked'
		  AND occurred_at >= NOW() - (($3)::TEXT || ' days')::INTERVAL
		  AND LOWER(COALESCE(data->'autonomy_gate'->>'effective_quality_status', 'healthy')) <> 'degraded'
		  AND COALESCE(
				NULLIF(data->>'runtime_model_identity', ''),
				NULLIF(data->'autonomy_policy'->>'model_identity', '')
		  ) = $2`,
		ownerID, modelIdentity, lookbackDays)
	if scanErr := row.Scan(&sampleCount, &weightedSum); scanErr != nil {
		return 0, 0, "", fmt.Errorf("failed to aggregate tier telemetry: %w", scanErr)
	}

	tierRow := db.QueryRowContext(ctx,
		`SELECT COALESCE(data->'autonomy_policy'->>'capability_tier', '')
		FROM events
		WHERE owner_id = $1
		  AND event_type = 'quality.save_claim.checked'
		  AND occurred_at >= NOW() - (($3)::TEXT || ' days')::INTERVAL
		  AND LOWER(COALESCE(data->'autonomy_gate'->>'effective_quality_status', 'healthy')) <> 'degraded'
		  AND COALESCE(
				NULLIF(data->>'runtime_model_identity', ''),
				NULLIF(data->'autonomy_policy'->>'model_identity', '')
		  ) = $2
		ORDER BY occurred_at DESC
		LIMIT 1`,
		ownerID, modelIdentity, lookbackDays)
	if scanErr := tierRow.Scan(&previousTier); scanErr != nil {
		if errors.Is(scanErr, stdsql.ErrNoRows) {
			return sampleCount, weightedSum, "", nil
		}
		return 0, 0, "", fmt.Errorf("failed to read previous tier: %w", scanErr)
	}

	return sampleCount, weightedSum, previousTier, nil
}

func metadataToMap(meta models.EventMetadata) map[string]interface{} {
	out := map[string]interface{}{
		"idempotency_key": meta.IdempotencyKey,
	}
	if meta.Source != "" {
		out["source"] = meta.Source
	}
	if meta.Agent != "" {
		out["agent"] = meta.Agent
	}
	if meta.Device != "" {
		out["device"] = meta.Device
	}
	if meta.SessionID != "" {
		out["session_id"] = meta.SessionID
	}
	return out
}

func metadataFromMap(raw map[string]interface{}) models.EventMetadata {
	get := func(key string) string {
		if v, ok := raw[key].(string); ok {
			return v
		}
		return ""
	}
	return models.EventMetadata{
		Source:         get("source"),
		Agent:          get("agent"),
		Device:         get("device"),
		SessionID:      get("session_id"),
		IdempotencyKey: get("idempotency_key"),
	}
}

func rowToEvent(row *ent.Event) models.Event {
	return models.Event{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		OccurredAt: row.OccurredAt,
		EventType:  row.EventType,
		Data:       row.Data,
		Metadata:   metadataFromMap(row.Metadata),
		CreatedAt:  row.CreatedAt,
	}
}

// conflictingKey extracts which idempotency key collided from the
// constraint error text; falls back to "unknown".
func conflictingKey(err error, keys []string) string {
	message := err.Error()
	for _, key := range keys {
		if key != "" && strings.Contains(message, key) {
			return key
		}
	}
	return "unknown"
}
