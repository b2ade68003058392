package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-pipeline/internal/config"
)

func newTestConnection(t *testing.T) *Connection {
	t.Helper()

	conn, err := NewConnection(context.Background(), config.Database{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "db", "sales.sqlite"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Migrate(context.Background()))
	return conn
}

func TestConnection_Placeholder(t *testing.T) {
	assert.Equal(t, squirrel.Question, (&Connection{driver: config.DriverSQLite}).Placeholder())
	assert.Equal(t, squirrel.Dollar, (&Connection{driver: config.DriverPostgres}).Placeholder())
}

func TestConnection_MigrateIsIdempotent(t *testing.T) {
	conn := newTestConnection(t)

	require.NoError(t, conn.Migrate(context.Background()))

	var count int
	err := conn.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM sales_records").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestConnection_RunInTransaction(t *testing.T) {
	ctx := context.Background()
	conn := newTestConnection(t)

	insert := func(tx *sql.Tx, id string) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO pipeline_runs (id, input_path, clean_path, status, started_at) VALUES (?, 'in.csv', 'out.csv', 'running', CURRENT_TIMESTAMP)",
			id,
		)
		return err
	}

	t.Run("Commit quando a função não retorna erro", func(t *testing.T) {
		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			return insert(tx, "run-commit")
		})
		require.NoError(t, err)

		var count int
		require.NoError(t, conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM pipeline_runs WHERE id = ?", "run-commit").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("Rollback quando a função retorna erro", func(t *testing.T) {
		failure := errors.New("falha")
		err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			require.NoError(t, insert(tx, "run-rollback"))
			return failure
		})
		assert.ErrorIs(t, err, failure)

		var count int
		require.NoError(t, conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM pipeline_runs WHERE id = ?", "run-rollback").Scan(&count))
		assert.Equal(t, 0, count)
	})
}
