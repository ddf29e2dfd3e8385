package runstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/schema"
)

func TestMigrateRuns_SQLiteLifecycle(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	// Migrate to latest on a fresh database
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, -1))

	// Running again is a no-op, not an error
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, -1))

	// Migrate down to a specific version
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, 1))

	// Roll all the way back
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, 0))
}

func TestMigrateRuns_MigratedStoreIsUsable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")
	require.NoError(t, MigrateRuns(schema.SQLiteBackend, dbPath, -1))

	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun("post-migrate", time.Now().UTC(), nil)
	require.NoError(t, err)
	assert.Positive(t, runID)
}

func TestMigrateRuns_NoneBackend(t *testing.T) {
	err := MigrateRuns(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestMigrateRuns_UnsupportedBackend(t *testing.T) {
	err := MigrateRuns(schema.DatabaseBackend("oracle"), "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}
