package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/felixgeelhaar/catalog/internal/shared/infrastructure/database"
)

//go:embed sqlite/*.sql postgres/*.sql
var migrationsFS embed.FS

// Files returns the ordered .up.sql migrations for driver.
func Files(driver database.Driver) ([]string, error) {
	if !driver.IsValid() {
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}

	entries, err := fs.ReadDir(migrationsFS, driver.String())
	if err != nil {
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, driver.String()+"/"+entry.Name())
		}
	}
	slices.Sort(files)
	return files, nil
}

// Run applies every migration for the connection's driver in order.
// Migrations use IF NOT EXISTS so running them twice is harmless.
func Run(ctx context.Context, conn database.Connection) error {
	files, err := Files(conn.Driver())
	if err != nil {
		return err
	}

	for _, file := range files {
		stmt, err := migrationsFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file, err)
		}
		if _, err := conn.Exec(ctx, string(stmt)); err != nil {
			return fmt.Errorf("execute migration %s: %w", file, err)
		}
	}
	return nil
}
