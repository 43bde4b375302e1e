// audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogSync(ctx context.Context, log SyncLog) error
	LogVerification(ctx context.Context, log VerificationLog) error
	QuerySyncLogs(ctx context.Context, from, to time.Time, source string) ([]SyncLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogSync(ctx context.Context, log SyncLog) error {
	return s.repo.LogSync(ctx, log)
}

func (s *service) LogVerification(ctx context.Context, log VerificationLog) error {
	return s.repo.LogVerification(ctx, log)
}

func (s *service) QuerySyncLogs(ctx context.Context, from, to time.Time, source string) ([]SyncLog, error) {
	return s.repo.QuerySyncLogs(ctx, from, to, source)
}
