package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/ent"
	"github.com/jonzim-cmd/kura/ent/projectionsnapshot"
	"github.com/jonzim-cmd/kura/pkg/database"
	"github.com/jonzim-cmd/kura/pkg/models"
)

// ProjectionService reads materialized projection snapshots. The core
// never mutates projections; external workers own the write side.
type ProjectionService struct {
	client *database.Client
}

// NewProjectionService creates a new ProjectionService.
func NewProjectionService(client *database.Client) *ProjectionService {
	return &ProjectionService{client: client}
}

// Get returns one projection snapshot under the owner scope.
func (s *ProjectionService) Get(ctx context.Context, ownerID uuid.UUID, projectionType, key string) (*models.Projection, error) {
	var row *ent.ProjectionSnapshot
	err := withOwnerScope(ctx, s.client.Client, ownerID, func(tx *ent.Tx) error {
		var err error
		row, err = tx.ProjectionSnapshot.Query().
			Where(
				projectionsnapshot.OwnerIDEQ(ownerID),
				projectionsnapshot.ProjectionTypeEQ(projectionType),
				projectionsnapshot.KeyEQ(key),
			).
			Only(ctx)
		return err
	})
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get projection %s/%s: %w", projectionType, key, err)
	}

	return rowToProjection(row), nil
}

// ListByTypes returns the owner's snapshots for the given projection
// types, used to compose the agent context bundle.
func (s *ProjectionService) ListByTypes(ctx context.Context, ownerID uuid.UUID, projectionTypes []string) ([]models.Projection, error) {
	var rows []*ent.ProjectionSnapshot
	err := withOwnerScope(ctx, s.client.Client, ownerID, func(tx *ent.Tx) error {
		var err error
		rows, err = tx.ProjectionSnapshot.Query().
			Where(
				projectionsnapshot.OwnerIDEQ(ownerID),
				projectionsnapshot.ProjectionTypeIn(projectionTypes...),
			).
			All(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projections: %w", err)
	}

	out := make([]models.Projection, 0, len(rows))
	for _, row := range rows {
		out = append(out, *rowToProjection(row))
	}
	return out, nil
}

// VersionsFor returns current versions for the given targets, keyed by
// "type/key". Missing projections are absent from the map. Used by the
// simulate endpoint to predict version increments.
func (s *ProjectionService) VersionsFor(ctx context.Context, ownerID uuid.UUID, targets []models.ReadAfterWriteTarget) (map[string]int64, error) {
	if len(targets) == 0 {
		return map[string]int64{}, nil
	}

	types := make([]string, 0, len(targets))
	for _, target := range targets {
		types = append(types, target.ProjectionType)
	}

	var rows []*ent.ProjectionSnapshot
	err := withOwnerScope(ctx, s.client.Client, ownerID, func(tx *ent.Tx) error {
		var err error
		rows, err = tx.ProjectionSnapshot.Query().
			Where(
				projectionsnapshot.OwnerIDEQ(ownerID),
				projectionsnapshot.ProjectionTypeIn(types...),
			).
			All(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projection versions: %w", err)
	}

	wanted := make(map[string]struct{}, len(targets))
	for _, target := range targets {
		wanted[target.ProjectionType+"/"+target.Key] = struct{}{}
	}

	versions := make(map[string]int64)
	for _, row := range rows {
		mapKey := row.ProjectionType + "/" + row.Key
		if _, ok := wanted[mapKey]; ok {
			versions[mapKey] = row.Version
		}
	}
	return versions, nil
}

func rowToProjection(row *ent.ProjectionSnapshot) *models.Projection {
	return &models.Projection{
		ProjectionType: row.ProjectionType,
		Key:            row.Key,
		Data:           row.Data,
		Version:        row.Version,
		LastEventID:    row.LastEventID,
		UpdatedAt:      row.UpdatedAt,
	}
}
