// test/mock/services.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campushub/campus-api/model"
)

// MockMenuService is a mock implementation of service.IMenuService
type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) SyncMenus(ctx context.Context, force bool) (int, error) {
	args := m.Called(ctx, force)
	return args.Int(0), args.Error(1)
}

func (m *MockMenuService) GetMenus(ctx context.Context, cafeteriaID int, date string) ([]model.CafeteriaMenu, error) {
	args := m.Called(ctx, cafeteriaID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CafeteriaMenu), args.Error(1)
}

func (m *MockMenuService) GetMenuDates(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockChatService is a mock implementation of service.IChatService
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) VerifyMessage(ctx context.Context, message model.ChatMessage) bool {
	args := m.Called(ctx, message)
	return args.Bool(0)
}

func (m *MockChatService) ReloadKeys(keys []model.ChatPublicKey) {
	m.Called(keys)
}
