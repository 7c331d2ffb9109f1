package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonzim-cmd/kura/ent"
)

// withOwnerScope runs fn inside a transaction whose row-security scope
// variable is pinned to ownerID. Every table predicate additionally
// carries the owner id explicitly, so isolation does not depend on the
// connection role honoring the policy.
//
// The scope variable is transaction-local (set_config(..., true)), so a
// pooled connection never leaks scope across owners.
func withOwnerScope(ctx context.Context, client *ent.Client, ownerID uuid.UUID, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"SELECT set_config('kura.current_owner_id', $1, true)", ownerID.String()); err != nil {
		return fmt.Errorf("failed to set owner scope: %w", err)
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
