// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/campushub/campus-api/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogSync(ctx context.Context, log audit.SyncLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) LogVerification(ctx context.Context, log audit.VerificationLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QuerySyncLogs(ctx context.Context, from, to time.Time, source string) ([]audit.SyncLog, error) {
	args := m.Called(ctx, from, to, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]audit.SyncLog), args.Error(1)
}
