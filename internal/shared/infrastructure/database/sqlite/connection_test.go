package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/database"
)

func openTestConnection(t *testing.T) database.Connection {
	t.Helper()
	conn, err := Open(context.Background(), database.Config{
		SQLitePath: filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestOpen(t *testing.T) {
	conn := openTestConnection(t)

	assert.NoError(t, conn.Ping(context.Background()))
	assert.Equal(t, database.DriverSQLite, conn.Driver())
}

func TestOpen_ThroughFactory(t *testing.T) {
	ctx := context.Background()

	conn, err := database.NewConnection(ctx, database.Config{
		Driver:     database.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "nested", "catalog.db"),
	})
	require.NoError(t, err)
	defer conn.Close()

	assert.NoError(t, conn.Ping(ctx))
}

func TestConnection_ExecAndQuery(t *testing.T) {
	ctx := context.Background()
	conn := openTestConnection(t)

	_, err := conn.Exec(ctx, `CREATE TABLE labels (id TEXT PRIMARY KEY, name TEXT)`)
	require.NoError(t, err)

	result, err := conn.Exec(ctx, `INSERT INTO labels (id, name) VALUES (?, ?)`, "1", "Books")
	require.NoError(t, err)
	affected, err := result.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	var name string
	require.NoError(t, conn.QueryRow(ctx, `SELECT name FROM labels WHERE id = ?`, "1").Scan(&name))
	assert.Equal(t, "Books", name)

	_, err = conn.Exec(ctx, `INSERT INTO labels (id, name) VALUES (?, ?)`, "2", "Music")
	require.NoError(t, err)

	rows, err := conn.Query(ctx, `SELECT name FROM labels ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		require.NoError(t, rows.Scan(&n))
		names = append(names, n)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"Books", "Music"}, names)
}

func TestConnection_Transaction(t *testing.T) {
	ctx := context.Background()
	conn := openTestConnection(t)

	_, err := conn.Exec(ctx, `CREATE TABLE labels (id TEXT PRIMARY KEY, name TEXT)`)
	require.NoError(t, err)

	tx, err := conn.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, `INSERT INTO labels (id, name) VALUES (?, ?)`, "1", "Books")
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	tx, err = conn.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.Exec(ctx, `INSERT INTO labels (id, name) VALUES (?, ?)`, "2", "Music")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	var count int
	require.NoError(t, conn.QueryRow(ctx, `SELECT COUNT(*) FROM labels`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	ctx := context.Background()
	conn := openTestConnection(t)
	_, err := conn.Exec(ctx, `CREATE TABLE labels (id TEXT PRIMARY KEY)`)
	require.NoError(t, err)

	uow := database.NewUnitOfWork(conn)
	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	_, err = database.ExecutorFromContext(txCtx, conn).Exec(txCtx, `INSERT INTO labels (id) VALUES (?)`, "1")
	require.NoError(t, err)
	require.NoError(t, uow.Rollback(txCtx))

	var count int
	require.NoError(t, conn.QueryRow(ctx, `SELECT COUNT(*) FROM labels`).Scan(&count))
	assert.Zero(t, count)
}
