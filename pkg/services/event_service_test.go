package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/apperror"
	"github.com/jonzim-cmd/kura/pkg/models"
	testdb "github.com/jonzim-cmd/kura/test/database"
)

func makeEvent(eventType, idempotencyKey string) models.CreateEventRequest {
	return models.CreateEventRequest{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Data:      map[string]any{"weight_kg": 80.0, "reps": 5.0, "exercise_id": "bench_press"},
		Metadata: models.EventMetadata{
			Source:         "test",
			IdempotencyKey: idempotencyKey,
		},
	}
}

func TestEventService_AppendAtomic(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client)
	ownerID := uuid.New()
	ctx := context.Background()

	t.Run("appends a batch and mirrors submission order", func(t *testing.T) {
		events := []models.CreateEventRequest{
			makeEvent("set.logged", "order-1"),
			makeEvent("set.logged", "order-2"),
			makeEvent("session.completed", "order-3"),
		}

		receipts, err := eventService.AppendAtomic(ctx, ownerID, events)
		require.NoError(t, err)
		require.Len(t, receipts, 3)
		assert.Equal(t, "order-1", receipts[0].IdempotencyKey)
		assert.Equal(t, "order-2", receipts[1].IdempotencyKey)
		assert.Equal(t, "order-3", receipts[2].IdempotencyKey)
		assert.Equal(t, "session.completed", receipts[2].EventType)
	})

	t.Run("idempotency conflict fails the whole batch", func(t *testing.T) {
		owner := uuid.New()
		_, err := eventService.AppendAtomic(ctx, owner, []models.CreateEventRequest{
			makeEvent("set.logged", "dup-key"),
		})
		require.NoError(t, err)

		before, err := eventService.CountByOwner(ctx, owner)
		require.NoError(t, err)

		_, err = eventService.AppendAtomic(ctx, owner, []models.CreateEventRequest{
			makeEvent("set.logged", "fresh-key"),
			makeEvent("set.logged", "dup-key"),
		})
		var conflict *apperror.IdempotencyConflict
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "dup-key", conflict.IdempotencyKey)

		// Atomicity: the non-conflicting event must not have landed.
		after, err := eventService.CountByOwner(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("same key under a different owner is fine", func(t *testing.T) {
		ownerA := uuid.New()
		ownerB := uuid.New()

		_, err := eventService.AppendAtomic(ctx, ownerA, []models.CreateEventRequest{makeEvent("set.logged", "shared-key")})
		require.NoError(t, err)
		_, err = eventService.AppendAtomic(ctx, ownerB, []models.CreateEventRequest{makeEvent("set.logged", "shared-key")})
		require.NoError(t, err)
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		_, err := eventService.AppendAtomic(ctx, ownerID, nil)
		var validation *apperror.Validation
		require.True(t, errors.As(err, &validation))
	})

	t.Run("oversized batch is rejected", func(t *testing.T) {
		events := make([]models.CreateEventRequest, MaxBatchSize+1)
		for i := range events {
			events[i] = makeEvent("set.logged", uuid.NewString())
		}
		_, err := eventService.AppendAtomic(ctx, ownerID, events)
		var validation *apperror.Validation
		require.True(t, errors.As(err, &validation))
	})

	t.Run("event ids are time-ordered", func(t *testing.T) {
		owner := uuid.New()
		first, err := eventService.AppendAtomic(ctx, owner, []models.CreateEventRequest{makeEvent("set.logged", "t-1")})
		require.NoError(t, err)
		second, err := eventService.AppendAtomic(ctx, owner, []models.CreateEventRequest{makeEvent("set.logged", "t-2")})
		require.NoError(t, err)

		assert.Less(t, first[0].EventID.String(), second[0].EventID.String())
	})
}

func TestEventService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client)
	ctx := context.Background()
	ownerID := uuid.New()

	base := time.Now().UTC().Add(-time.Hour)
	var batch []models.CreateEventRequest
	for i := 0; i < 5; i++ {
		evt := makeEvent("set.logged", uuid.NewString())
		evt.Timestamp = base.Add(time.Duration(i) * time.Minute)
		batch = append(batch, evt)
	}
	_, err := eventService.AppendAtomic(ctx, ownerID, batch)
	require.NoError(t, err)

	t.Run("orders by occurred_at desc", func(t *testing.T) {
		page, err := eventService.List(ctx, ownerID, models.ListEventsParams{Limit: 10})
		require.NoError(t, err)
		require.Len(t, page.Data, 5)
		assert.False(t, page.HasMore)
		for i := 1; i < len(page.Data); i++ {
			assert.False(t, page.Data[i].OccurredAt.After(page.Data[i-1].OccurredAt))
		}
	})

	t.Run("cursor pages are stable and disjoint", func(t *testing.T) {
		first, err := eventService.List(ctx, ownerID, models.ListEventsParams{Limit: 2})
		require.NoError(t, err)
		require.Len(t, first.Data, 2)
		require.True(t, first.HasMore)
		require.NotEmpty(t, first.NextCursor)

		second, err := eventService.List(ctx, ownerID, models.ListEventsParams{Limit: 2, Cursor: first.NextCursor})
		require.NoError(t, err)
		require.Len(t, second.Data, 2)

		seen := map[uuid.UUID]struct{}{}
		for _, evt := range append(append([]models.Event{}, first.Data...), second.Data...) {
			_, dup := seen[evt.ID]
			require.False(t, dup, "cursor pages must not overlap")
			seen[evt.ID] = struct{}{}
		}
	})

	t.Run("owner scoping filters everything", func(t *testing.T) {
		page, err := eventService.List(ctx, uuid.New(), models.ListEventsParams{Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
	})

	t.Run("event type filter applies", func(t *testing.T) {
		other := makeEvent("meal.logged", uuid.NewString())
		_, err := eventService.AppendAtomic(ctx, ownerID, []models.CreateEventRequest{other})
		require.NoError(t, err)

		page, err := eventService.List(ctx, ownerID, models.ListEventsParams{EventType: "meal.logged", Limit: 10})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "meal.logged", page.Data[0].EventType)
	})
}

func TestEventService_KnownExerciseIDs(t *testing.T) {
	client := testdb.NewTestClient(t)
	eventService := NewEventService(client)
	ctx := context.Background()
	ownerID := uuid.New()

	_, err := eventService.AppendAtomic(ctx, ownerID, []models.CreateEventRequest{
		makeEvent("set.logged", uuid.NewString()),
	})
	require.NoError(t, err)

	known, err := eventService.KnownExerciseIDs(ctx, ownerID)
	require.NoError(t, err)
	_, ok := known["bench_press"]
	assert.True(t, ok)
}
