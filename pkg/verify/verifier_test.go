package verify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/models"
	"github.com/jonzim-cmd/kura/pkg/services"
)

// fakeSnapshots is an in-memory SnapshotReader whose projections can
// catch up mid-poll.
type fakeSnapshots struct {
	mu          sync.Mutex
	projections map[string]*models.Projection
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{projections: map[string]*models.Projection{}}
}

func (f *fakeSnapshots) set(projectionType, key string, version int64, lastEventID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projections[projectionType+"/"+key] = &models.Projection{
		ProjectionType: projectionType,
		Key:            key,
		Version:        version,
		LastEventID:    &lastEventID,
	}
}

func (f *fakeSnapshots) Get(_ context.Context, _ uuid.UUID, projectionType, key string) (*models.Projection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	projection, ok := f.projections[projectionType+"/"+key]
	if !ok {
		return nil, services.ErrNotFound
	}
	copied := *projection
	return &copied, nil
}

func mustV7(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id
}

func TestClampTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, ClampTimeout(nil))

	negative := -5
	assert.Equal(t, DefaultTimeout, ClampTimeout(&negative))

	short := 500
	assert.Equal(t, 500*time.Millisecond, ClampTimeout(&short))

	tooLong := 60000
	assert.Equal(t, MaxTimeout, ClampTimeout(&tooLong))
}

func TestVerify(t *testing.T) {
	ownerID := uuid.New()
	ctx := context.Background()

	t.Run("already converged projection verifies immediately", func(t *testing.T) {
		appendedID := mustV7(t)
		snapshots := newFakeSnapshots()
		snapshots.set("exercise_progression", "bench_press", 3, appendedID)

		verifier := NewVerifier(snapshots)
		checks := verifier.Verify(ctx, ownerID,
			[]models.ReadAfterWriteTarget{{ProjectionType: "exercise_progression", Key: "bench_press"}},
			appendedID, time.Second)

		require.Len(t, checks, 1)
		assert.Equal(t, models.CheckStatusVerified, checks[0].Status)
		require.NotNil(t, checks[0].ObservedVersion)
		assert.Equal(t, int64(3), *checks[0].ObservedVersion)
	})

	t.Run("projection catching up mid-poll verifies", func(t *testing.T) {
		staleID := mustV7(t)
		appendedID := mustV7(t)
		snapshots := newFakeSnapshots()
		snapshots.set("exercise_progression", "bench_press", 3, staleID)

		go func() {
			time.Sleep(120 * time.Millisecond)
			snapshots.set("exercise_progression", "bench_press", 4, appendedID)
		}()

		verifier := NewVerifier(snapshots)
		checks := verifier.Verify(ctx, ownerID,
			[]models.ReadAfterWriteTarget{{ProjectionType: "exercise_progression", Key: "bench_press"}},
			appendedID, 2*time.Second)

		assert.Equal(t, models.CheckStatusVerified, checks[0].Status)
	})

	t.Run("missing projection fails at the deadline", func(t *testing.T) {
		verifier := NewVerifier(newFakeSnapshots())
		checks := verifier.Verify(ctx, ownerID,
			[]models.ReadAfterWriteTarget{{ProjectionType: "nutrition", Key: "overview"}},
			mustV7(t), 200*time.Millisecond)

		assert.Equal(t, models.CheckStatusFailed, checks[0].Status)
	})

	t.Run("stale projection stays pending at the deadline", func(t *testing.T) {
		staleID := mustV7(t)
		appendedID := mustV7(t)
		snapshots := newFakeSnapshots()
		snapshots.set("recovery", "overview", 7, staleID)

		verifier := NewVerifier(snapshots)
		checks := verifier.Verify(ctx, ownerID,
			[]models.ReadAfterWriteTarget{{ProjectionType: "recovery", Key: "overview"}},
			appendedID, 200*time.Millisecond)

		assert.Equal(t, models.CheckStatusPending, checks[0].Status)
		require.NotNil(t, checks[0].ObservedVersion)
	})

	t.Run("all targets run concurrently and keep order", func(t *testing.T) {
		appendedID := mustV7(t)
		snapshots := newFakeSnapshots()
		snapshots.set("recovery", "overview", 1, appendedID)

		verifier := NewVerifier(snapshots)
		checks := verifier.Verify(ctx, ownerID, []models.ReadAfterWriteTarget{
			{ProjectionType: "recovery", Key: "overview"},
			{ProjectionType: "nutrition", Key: "overview"},
		}, appendedID, 200*time.Millisecond)

		require.Len(t, checks, 2)
		assert.Equal(t, "recovery", checks[0].ProjectionType)
		assert.Equal(t, models.CheckStatusVerified, checks[0].Status)
		assert.Equal(t, "nutrition", checks[1].ProjectionType)
		assert.Equal(t, models.CheckStatusFailed, checks[1].Status)
	})
}

func TestAllVerified(t *testing.T) {
	assert.True(t, AllVerified(nil))
	assert.True(t, AllVerified([]models.ReadAfterWriteCheck{{Status: models.CheckStatusVerified}}))
	assert.False(t, AllVerified([]models.ReadAfterWriteCheck{
		{Status: models.CheckStatusVerified},
		{Status: models.CheckStatusPending},
	}))
}
