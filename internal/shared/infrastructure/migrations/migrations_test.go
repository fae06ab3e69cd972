package migrations_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/database/sqlite"
	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/migrations"
)

func TestFiles(t *testing.T) {
	for _, driver := range []database.Driver{database.DriverSQLite, database.DriverPostgres} {
		t.Run(driver.String(), func(t *testing.T) {
			files, err := migrations.Files(driver)
			require.NoError(t, err)
			assert.Equal(t, []string{driver.String() + "/0001_categories.up.sql"}, files)
		})
	}

	_, err := migrations.Files("mysql")
	assert.Error(t, err)
}

func TestRun_SQLiteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn, err := sqlite.Open(ctx, database.Config{SQLitePath: filepath.Join(t.TempDir(), "catalog.db")})
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, migrations.Run(ctx, conn))
	require.NoError(t, migrations.Run(ctx, conn))

	var count int
	require.NoError(t, conn.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count))
	assert.Zero(t, count)
}
