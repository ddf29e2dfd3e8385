package runstore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendscope/trendscope/internal/contract"
	"github.com/trendscope/trendscope/schema"
)

func TestInitStores(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "runs.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(schema.SQLiteBackend, dbPath)
		if err != nil {
			t.Fatalf("Failed to initialize run tracking: %v", err)
		}

		if Manager.GetRunStore() == nil {
			t.Fatal("Run store is nil")
		}

		CloseStores()

		// Verify database file was created
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			t.Fatal("Database file was not created")
		}
	})

	t.Run("idempotent setup", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "runs.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Multiple initializations should be safe (sync.Once)
		require.NoError(t, InitStores(schema.SQLiteBackend, dbPath))
		require.NoError(t, InitStores(schema.SQLiteBackend, dbPath))
		require.NoError(t, InitStores(schema.SQLiteBackend, dbPath))

		first := Manager.GetRunStore()
		require.NotNil(t, first)

		// Multiple closes should also be safe
		CloseStores()
		CloseStores()
	})

	t.Run("disabled tracking leaves no store", func(t *testing.T) {
		initOnce = sync.Once{}
		closeOnce = sync.Once{}

		require.NoError(t, InitStores(schema.NoneBackend, ""))
		assert.Nil(t, Manager.GetRunStore())

		CloseStores()
	})
}

// swapManagerStore installs a store into the global manager for the duration
// of a test and restores the previous one afterwards.
func swapManagerStore(t *testing.T, store contract.RunStore) {
	t.Helper()
	Manager.Lock()
	prev := Manager.runs
	Manager.runs = store
	Manager.Unlock()
	t.Cleanup(func() {
		Manager.Lock()
		Manager.runs = prev
		Manager.Unlock()
	})
}

func TestExecuteRunExport(t *testing.T) {
	t.Run("requires output file", func(t *testing.T) {
		err := ExecuteRunExport("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--output-file is required")
	})

	t.Run("requires a configured store", func(t *testing.T) {
		swapManagerStore(t, nil)

		err := ExecuteRunExport(filepath.Join(t.TempDir(), "out"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "run tracking is not configured")
	})

	t.Run("rejects empty store", func(t *testing.T) {
		swapManagerStore(t, newSQLiteStore(t))

		err := ExecuteRunExport(filepath.Join(t.TempDir(), "out"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no run data found")
	})

	t.Run("exports runs and bundles", func(t *testing.T) {
		store := newSQLiteStore(t)
		swapManagerStore(t, store)

		runID, err := store.BeginRun("batch-1", time.Now().UTC(), map[string]any{"workers": 4})
		require.NoError(t, err)
		require.NoError(t, store.EndRun(runID, time.Now().UTC(), 3))
		require.NoError(t, store.SaveBundle("batch-1", sampleBundle("batch-1")))

		outputBase := filepath.Join(t.TempDir(), "export")
		require.NoError(t, ExecuteRunExport(outputBase))

		for _, suffix := range []string{".report_runs.parquet", ".segments.parquet", ".portfolio.parquet"} {
			info, err := os.Stat(outputBase + suffix)
			require.NoError(t, err, "expected export file %s", suffix)
			assert.Greater(t, info.Size(), int64(0))
		}
	})
}
