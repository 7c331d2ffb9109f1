package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonzim-cmd/kura/pkg/models"
	testdb "github.com/jonzim-cmd/kura/test/database"
)

func TestProjectionService(t *testing.T) {
	client := testdb.NewTestClient(t)
	projectionService := NewProjectionService(client)
	ctx := context.Background()
	ownerID := uuid.New()

	lastEventID, err := uuid.NewV7()
	require.NoError(t, err)

	// Seed snapshots directly; projection materialization is owned by
	// external workers in production.
	_, err = client.ProjectionSnapshot.Create().
		SetOwnerID(ownerID).
		SetProjectionType("user_profile").
		SetKey("current").
		SetData(map[string]any{"user": map[string]any{"preferences": map[string]any{"timezone": "Europe/Berlin"}}}).
		SetVersion(3).
		SetLastEventID(lastEventID).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ProjectionSnapshot.Create().
		SetOwnerID(ownerID).
		SetProjectionType("quality_health").
		SetKey("current").
		SetData(map[string]any{"autonomy_policy": map[string]any{"slo_status": "healthy"}}).
		SetVersion(1).
		Save(ctx)
	require.NoError(t, err)

	t.Run("get returns the snapshot", func(t *testing.T) {
		projection, err := projectionService.Get(ctx, ownerID, "user_profile", "current")
		require.NoError(t, err)
		assert.Equal(t, int64(3), projection.Version)
		require.NotNil(t, projection.LastEventID)
		assert.Equal(t, lastEventID, *projection.LastEventID)
	})

	t.Run("get under another owner is not found", func(t *testing.T) {
		_, err := projectionService.Get(ctx, uuid.New(), "user_profile", "current")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("list by types returns only requested projections", func(t *testing.T) {
		projections, err := projectionService.ListByTypes(ctx, ownerID, []string{"user_profile", "training_plan"})
		require.NoError(t, err)
		require.Len(t, projections, 1)
		assert.Equal(t, "user_profile", projections[0].ProjectionType)
	})

	t.Run("versions for targets skip missing projections", func(t *testing.T) {
		versions, err := projectionService.VersionsFor(ctx, ownerID, []models.ReadAfterWriteTarget{
			{ProjectionType: "user_profile", Key: "current"},
			{ProjectionType: "nutrition", Key: "overview"},
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"user_profile/current": 3}, versions)
	})
}
