package database

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenAppliesMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "audit.db"), discardLogger())
	require.NoError(t, err)
	defer db.Close()

	applied, err := AppliedMigrations(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_audit_logs", "002_roles"}, applied)

	for _, table := range []string{"activity_logs", "exception_logs", "roles", "link_permissions"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		assert.NoError(t, err, table)
	}
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "audit.db")

	db, err := Open(ctx, path, discardLogger())
	require.NoError(t, err)
	require.NoError(t, RunMigrations(ctx, db, discardLogger()))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path, discardLogger())
	require.NoError(t, err)
	defer db.Close()

	applied, err := AppliedMigrations(ctx, db)
	require.NoError(t, err)
	assert.Len(t, applied, 2)
}

func TestForeignKeysEnforced(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "audit.db"), discardLogger())
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, "INSERT INTO link_permissions (role_id, controller, action) VALUES (999, 'Role', 'Create')")
	assert.Error(t, err)
}

func TestLoadMigrationsSortsByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/010_b.sql": {Data: []byte("SELECT 2;")},
		"migrations/002_a.sql": {Data: []byte("SELECT 1;")},
		"migrations/notes.txt": {Data: []byte("ignored")},
	}

	migrations, err := LoadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "002_a", migrations[0].Version)
	assert.Equal(t, "010_b.sql", migrations[1].Filename)
	assert.Equal(t, "SELECT 2;", migrations[1].SQL)
}

func TestLoadMigrationsEmpty(t *testing.T) {
	_, err := LoadMigrations(fstest.MapFS{})
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on&_busy_timeout=5000", DSN("a.db"))
	assert.Equal(t, "file:a.db?mode=ro", DSN("file:a.db?mode=ro"))
}
