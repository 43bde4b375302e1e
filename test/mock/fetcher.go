// test/mock/fetcher.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campushub/campus-api/model"
)

// MockMenuFetcher is a mock implementation of client.MenuFetcher
type MockMenuFetcher struct {
	mock.Mock
}

func (m *MockMenuFetcher) FetchMenuFeed(ctx context.Context) (*model.MenuFeed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuFeed), args.Error(1)
}
