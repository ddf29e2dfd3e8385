//go:build database

// Package integration contains integration tests for trendscope.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags database ./integration
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedBinaryPath holds the path to a shared trendscope binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getTrendscopeBinary returns the path to the trendscope binary, building it once if needed.
func getTrendscopeBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "trendscope-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binaryPath := filepath.Join(tempDir, "trendscope")
		buildCmd := exec.Command("go", "build", "-o", binaryPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build trendscope: %v", err))
		}

		sharedBinaryPath = binaryPath
	})

	return sharedBinaryPath
}

// writeSampleDataset writes a small CSV dataset and returns its directory.
func writeSampleDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	accounts := `account_id,name,current_arr
acme,Acme Corp,200000
steady,Steady LLC,50000
fading,Fading Inc,70000
`
	metrics := `account_id,metric,date,value
acme,arr,2023-01-01,100000
acme,arr,2023-07-01,150000
acme,arr,2024-01-01,200000
acme,health,2023-01-01,70
acme,health,2024-01-01,85
steady,arr,2023-01-01,48000
steady,arr,2024-01-01,50000
fading,arr,2023-01-01,100000
fading,arr,2024-01-01,70000
fading,health,2023-01-01,80
fading,health,2024-01-01,50
`
	if err := os.WriteFile(filepath.Join(dir, "accounts.csv"), []byte(accounts), 0o644); err != nil {
		t.Fatalf("failed to write accounts fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "metrics.csv"), []byte(metrics), 0o644); err != nil {
		t.Fatalf("failed to write metrics fixture: %v", err)
	}
	return dir
}
