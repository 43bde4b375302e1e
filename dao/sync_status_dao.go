// dao/sync_status_dao.go
package dao

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	campus_errors "github.com/campushub/campus-api/errors"
	logger "github.com/campushub/campus-api/logging"
)

// SyncStatusDAO tracks the last successful import per remote source.
// Now is swappable so tests can pin the clock.
type SyncStatusDAO struct {
	DB  *sql.DB
	Now func() time.Time
}

func NewSyncStatusDAO(db *sql.DB) *SyncStatusDAO {
	return &SyncStatusDAO{DB: db, Now: time.Now}
}

// LastSync returns the recorded last-sync time for source. The bool
// is false when the source has never been synced.
func (dao *SyncStatusDAO) LastSync(ctx context.Context, source string) (time.Time, bool, error) {
	var raw string
	err := dao.DB.QueryRowContext(ctx,
		`SELECT last_sync FROM sync_status WHERE source = ?`, source).Scan(&raw)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		logger.Error("Failed to read sync status", zap.Error(err), zap.String("source", source))
		return time.Time{}, false, campus_errors.ErrDatabaseOperation
	}

	last, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		logger.Error("Corrupt sync status timestamp", zap.Error(err), zap.String("source", source))
		return time.Time{}, false, campus_errors.ErrDatabaseOperation
	}
	return last, true, nil
}

// NeedsSync reports whether source is due for a fresh import: true
// when no sync was ever recorded or when the TTL has fully elapsed.
// Read-only; safe to call repeatedly and concurrently.
func (dao *SyncStatusDAO) NeedsSync(ctx context.Context, source string, ttl time.Duration) (bool, error) {
	last, ok, err := dao.LastSync(ctx, source)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	return dao.Now().Sub(last) >= ttl, nil
}

// MarkSynced records now as the last successful sync for source.
// Callers invoke this only after the data commit succeeded.
func (dao *SyncStatusDAO) MarkSynced(ctx context.Context, source string) error {
	_, err := dao.DB.ExecContext(ctx,
		`REPLACE INTO sync_status (source, last_sync) VALUES (?, ?)`,
		source, dao.Now().UTC().Format(time.RFC3339))
	if err != nil {
		logger.Error("Failed to record sync status", zap.Error(err), zap.String("source", source))
		return campus_errors.ErrDatabaseOperation
	}
	return nil
}
