package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/trendscope/trendscope/schema"
)

// MockAccountSource is a mock implementation of AccountSource for testing.
type MockAccountSource struct {
	mock.Mock
}

var _ AccountSource = &MockAccountSource{} // Compile-time check

// LoadAccounts implements the AccountSource interface.
func (m *MockAccountSource) LoadAccounts(ctx context.Context) ([]schema.AccountSeries, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]schema.AccountSeries)
	return accounts, args.Error(1)
}
