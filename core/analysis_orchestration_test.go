package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trendscope/trendscope/internal/contract"
	"github.com/trendscope/trendscope/internal/runstore"
	"github.com/trendscope/trendscope/schema"
)

func testAccounts() []schema.AccountSeries {
	return []schema.AccountSeries{
		{
			ID:   "acme",
			Name: "Acme Corp",
			ARR: []schema.TimePoint{
				pt("2023-01-01", 100000),
				pt("2023-07-01", 150000),
				pt("2024-01-01", 200000),
			},
		},
		{
			ID:   "steady",
			Name: "Steady LLC",
			ARR: []schema.TimePoint{
				pt("2023-01-01", 50000),
				pt("2024-01-01", 50000),
			},
		},
	}
}

func TestRunReportCore_Success(t *testing.T) {
	ctx := context.Background()
	mockSource := &contract.MockAccountSource{}
	mockStore := &runstore.MockRunStore{}
	mockMgr := &runstore.MockStoreManager{}

	// Setup mock expectations
	mockMgr.On("GetRunStore").Return(mockStore)
	mockStore.On("BeginRun", "batch-1", mock.AnythingOfType("time.Time"), mock.Anything).Return(int64(7), nil)
	mockStore.On("SaveBundle", "batch-1", mock.AnythingOfType("*schema.ReportBundle")).Return(nil)
	mockStore.On("EndRun", int64(7), mock.AnythingOfType("time.Time"), 2).Return(nil)
	mockSource.On("LoadAccounts", ctx).Return(testAccounts(), nil)

	cfg := &contract.Config{
		BatchID:     "batch-1",
		DataPath:    "/test/data",
		Threshold:   15,
		Workers:     2,
		ResultLimit: 10,
	}

	bundle, err := runReportCore(ctx, cfg, mockSource, mockMgr)

	assert.NoError(t, err)
	assert.NotNil(t, bundle)
	assert.Equal(t, "batch-1", bundle.BatchID)
	assert.False(t, bundle.GeneratedAt.IsZero())
	assert.Len(t, bundle.Segments, 2)
	assert.Len(t, bundle.Summaries, len(schema.AllSegments))
	assert.NotEmpty(t, bundle.Portfolio)

	mockSource.AssertExpectations(t)
	mockStore.AssertExpectations(t)
	mockMgr.AssertExpectations(t)
}

func TestRunReportCore_NoAccounts(t *testing.T) {
	ctx := context.Background()
	mockSource := &contract.MockAccountSource{}

	mockSource.On("LoadAccounts", ctx).Return([]schema.AccountSeries{}, nil)

	cfg := &contract.Config{Workers: 1}

	bundle, err := runReportCore(ctx, cfg, mockSource, nil)

	assert.Error(t, err)
	assert.Nil(t, bundle)
	assert.Contains(t, err.Error(), "no accounts found")

	mockSource.AssertExpectations(t)
}

func TestRunReportCore_LoadError(t *testing.T) {
	ctx := context.Background()
	mockSource := &contract.MockAccountSource{}

	mockSource.On("LoadAccounts", ctx).Return(nil, assert.AnError)

	cfg := &contract.Config{Workers: 1}

	bundle, err := runReportCore(ctx, cfg, mockSource, nil)

	assert.Error(t, err)
	assert.Nil(t, bundle)

	mockSource.AssertExpectations(t)
}

// TestRunReportCore_TrackingFailuresAreSwallowed verifies that a broken run
// store never blocks the analysis itself.
func TestRunReportCore_TrackingFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	mockSource := &contract.MockAccountSource{}
	mockStore := &runstore.MockRunStore{}
	mockMgr := &runstore.MockStoreManager{}

	mockMgr.On("GetRunStore").Return(mockStore)
	mockStore.On("BeginRun", mock.Anything, mock.Anything, mock.Anything).Return(int64(3), nil)
	mockStore.On("SaveBundle", mock.Anything, mock.Anything).Return(assert.AnError)
	mockStore.On("EndRun", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)
	mockSource.On("LoadAccounts", ctx).Return(testAccounts(), nil)

	cfg := &contract.Config{BatchID: "batch-2", Workers: 1}

	bundle, err := runReportCore(ctx, cfg, mockSource, mockMgr)

	assert.NoError(t, err)
	assert.NotNil(t, bundle)

	mockStore.AssertExpectations(t)
}

// TestRunReportCore_BeginRunFailureSkipsPersistence verifies that when run
// creation fails, the bundle is still produced and no save is attempted.
func TestRunReportCore_BeginRunFailureSkipsPersistence(t *testing.T) {
	ctx := context.Background()
	mockSource := &contract.MockAccountSource{}
	mockStore := &runstore.MockRunStore{}
	mockMgr := &runstore.MockStoreManager{}

	mockMgr.On("GetRunStore").Return(mockStore)
	mockStore.On("BeginRun", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)
	mockSource.On("LoadAccounts", ctx).Return(testAccounts(), nil)

	cfg := &contract.Config{BatchID: "batch-3", Workers: 1}

	bundle, err := runReportCore(ctx, cfg, mockSource, mockMgr)

	assert.NoError(t, err)
	assert.NotNil(t, bundle)

	mockStore.AssertExpectations(t)
	mockStore.AssertNotCalled(t, "SaveBundle", mock.Anything, mock.Anything)
	mockStore.AssertNotCalled(t, "EndRun", mock.Anything, mock.Anything, mock.Anything)
}

// TestRunReportCore_NilStore verifies a manager without a configured store
// behaves like no manager at all.
func TestRunReportCore_NilStore(t *testing.T) {
	ctx := context.Background()
	mockSource := &contract.MockAccountSource{}
	mockMgr := &runstore.MockStoreManager{}

	mockMgr.On("GetRunStore").Return(nil)
	mockSource.On("LoadAccounts", ctx).Return(testAccounts(), nil)

	cfg := &contract.Config{BatchID: "batch-4", Workers: 1}

	bundle, err := runReportCore(ctx, cfg, mockSource, mockMgr)

	assert.NoError(t, err)
	assert.NotNil(t, bundle)

	mockMgr.AssertExpectations(t)
}

// TestSegmentAccountsParallel verifies worker-pool results land at the right indices.
func TestSegmentAccountsParallel(t *testing.T) {
	accounts := make([]schema.AccountSeries, 0, 10)
	for i := range 10 {
		id := string(rune('a' + i))
		accounts = append(accounts, schema.AccountSeries{
			ID: id,
			ARR: []schema.TimePoint{
				pt("2023-01-01", 100),
				pt("2024-01-01", 100+float64(i)*10),
			},
		})
	}

	cfg := &contract.Config{Workers: 4}
	segments := segmentAccountsParallel(context.Background(), cfg, accounts)

	assert.Len(t, segments, len(accounts))
	for i, seg := range segments {
		assert.Equal(t, accounts[i].ID, seg.AccountID)
	}
}

func TestFindAccount(t *testing.T) {
	accounts := testAccounts()

	t.Run("found", func(t *testing.T) {
		acct, err := findAccount(accounts, "acme")
		assert.NoError(t, err)
		assert.Equal(t, "Acme Corp", acct.Name)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := findAccount(accounts, "ghost")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "account not found")
	})
}

func TestSeriesForMetric(t *testing.T) {
	acct := schema.AccountSeries{
		ARR:    []schema.TimePoint{pt("2024-01-01", 1)},
		Health: []schema.TimePoint{pt("2024-01-01", 2)},
		NPS:    []schema.TimePoint{pt("2024-01-01", 3)},
	}

	assert.Equal(t, 1.0, seriesForMetric(acct, schema.ARRSeries)[0].Value)
	assert.Equal(t, 2.0, seriesForMetric(acct, schema.HealthSeries)[0].Value)
	assert.Equal(t, 3.0, seriesForMetric(acct, schema.NPSSeries)[0].Value)
	assert.Equal(t, 1.0, seriesForMetric(acct, schema.SeriesMetric("unknown"))[0].Value)
}
