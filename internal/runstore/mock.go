package runstore

import (
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/trendscope/trendscope/internal/contract"
	"github.com/trendscope/trendscope/schema"
)

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(batchID string, startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(batchID, startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, accountCount int) error {
	args := m.Called(runID, endTime, accountCount)
	return args.Error(0)
}

// SaveBundle implements the RunStore interface.
func (m *MockRunStore) SaveBundle(batchID string, bundle *schema.ReportBundle) error {
	args := m.Called(batchID, bundle)
	return args.Error(0)
}

// ListRuns implements the RunStore interface.
func (m *MockRunStore) ListRuns(limit int) ([]schema.ReportRun, error) {
	args := m.Called(limit)
	runs, _ := args.Get(0).([]schema.ReportRun)
	return runs, args.Error(1)
}

// GetBundle implements the RunStore interface.
func (m *MockRunStore) GetBundle(batchID string) (*schema.ReportBundle, error) {
	args := m.Called(batchID)
	bundle, _ := args.Get(0).(*schema.ReportBundle)
	return bundle, args.Error(1)
}

// GetAllBundles implements the RunStore interface.
func (m *MockRunStore) GetAllBundles() ([]schema.StoredBundle, error) {
	args := m.Called()
	bundles, _ := args.Get(0).([]schema.StoredBundle)
	return bundles, args.Error(1)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunStatus, error) {
	args := m.Called()
	status, _ := args.Get(0).(schema.RunStatus)
	return status, args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetRunStore implements the StoreManager interface.
func (m *MockStoreManager) GetRunStore() contract.RunStore {
	args := m.Called()
	store, _ := args.Get(0).(contract.RunStore)
	return store
}
