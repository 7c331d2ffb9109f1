// Package database provides test database helpers.
package database

import (
	"context"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jonzim-cmd/kura/ent"
	"github.com/jonzim-cmd/kura/pkg/database"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to the external
// PostgreSQL service container. In local dev: spins up a testcontainer.
// The container/connection is cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	drv, err := sql.Open(dialect.Postgres, connStr)
	require.NoError(t, err)

	db := drv.DB()
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production applies the versioned SQL
	// from pkg/database/migrations.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = database.CreateEventIndexes(ctx, drv)
	require.NoError(t, err)
	err = database.EnableOwnerRowSecurity(ctx, drv)
	require.NoError(t, err)

	client := database.NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}
