package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateEventIndexes creates JSONB GIN indexes for PostgreSQL.
// These enable efficient containment queries over event data, used by
// the tier-telemetry aggregate and custom projection rule matching.
func CreateEventIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_data_gin
		ON events USING gin(data jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create events data GIN index: %w", err)
	}

	return nil
}

// EnableOwnerRowSecurity installs row-level security policies on every
// owner-partitioned table. Each policy requires the per-transaction
// scope variable kura.current_owner_id to match the row's owner_id.
// Application roles that are not the table owner cannot touch a row
// without first setting the scope; service code additionally threads
// owner_id through every query predicate, so isolation holds even on
// connections where the role owns the tables (tests, retention sweeps).
func EnableOwnerRowSecurity(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	for _, table := range ownerScopedTables {
		stmts := []string{
			fmt.Sprintf(`ALTER TABLE %s ENABLE ROW LEVEL SECURITY`, table),
			fmt.Sprintf(`DROP POLICY IF EXISTS %s_owner_isolation ON %s`, table, table),
			fmt.Sprintf(
				`CREATE POLICY %s_owner_isolation ON %s
				USING (owner_id = NULLIF(current_setting('kura.current_owner_id', true), '')::uuid)
				WITH CHECK (owner_id = NULLIF(current_setting('kura.current_owner_id', true), '')::uuid)`,
				table, table),
		}
		for _, stmt := range stmts {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to install row security on %s: %w", table, err)
			}
		}
	}

	return nil
}
