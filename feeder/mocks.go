package feeder

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vhurryharry/Oracle/x/oracle/types"
)

type MockTargetSource struct {
	mock.Mock
}

func (m *MockTargetSource) FeedTargets(ctx context.Context) ([]types.FeedTarget, error) {
	args := m.Called(ctx)
	res := args.Get(0)
	if res == nil {
		return nil, args.Error(1)
	}
	return res.([]types.FeedTarget), args.Error(1)
}

type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, key []byte, value types.OracleValue) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
