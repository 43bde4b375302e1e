// dao/sync_status_dao_test.go
package dao_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-api/dao"
	logger "github.com/campushub/campus-api/logging"
)

func TestSyncStatusDAO(t *testing.T) {
	// Initialize logger
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctx := context.Background()
	ttl := 24 * time.Hour
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	t.Run("NeedsSync_TrueWhenNeverSynced", func(t *testing.T) {
		syncDAO := dao.NewSyncStatusDAO(openTestDB(t))

		due, err := syncDAO.NeedsSync(ctx, "cafeteria_menus", ttl)
		require.NoError(t, err)
		assert.True(t, due)

		_, ok, err := syncDAO.LastSync(ctx, "cafeteria_menus")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("NeedsSync_FalseWithinTTL", func(t *testing.T) {
		syncDAO := dao.NewSyncStatusDAO(openTestDB(t))
		syncDAO.Now = func() time.Time { return base }

		require.NoError(t, syncDAO.MarkSynced(ctx, "cafeteria_menus"))

		// Immediately after and one second before expiry.
		for _, now := range []time.Time{base, base.Add(ttl - time.Second)} {
			syncDAO.Now = func() time.Time { return now }
			due, err := syncDAO.NeedsSync(ctx, "cafeteria_menus", ttl)
			require.NoError(t, err)
			assert.False(t, due)
		}
	})

	t.Run("NeedsSync_TrueOnceTTLElapsed", func(t *testing.T) {
		syncDAO := dao.NewSyncStatusDAO(openTestDB(t))
		syncDAO.Now = func() time.Time { return base }

		require.NoError(t, syncDAO.MarkSynced(ctx, "cafeteria_menus"))

		syncDAO.Now = func() time.Time { return base.Add(ttl) }
		due, err := syncDAO.NeedsSync(ctx, "cafeteria_menus", ttl)
		require.NoError(t, err)
		assert.True(t, due)
	})

	t.Run("MarkSynced_RecordsLatestRun", func(t *testing.T) {
		syncDAO := dao.NewSyncStatusDAO(openTestDB(t))

		syncDAO.Now = func() time.Time { return base }
		require.NoError(t, syncDAO.MarkSynced(ctx, "cafeteria_menus"))

		later := base.Add(6 * time.Hour)
		syncDAO.Now = func() time.Time { return later }
		require.NoError(t, syncDAO.MarkSynced(ctx, "cafeteria_menus"))

		last, ok, err := syncDAO.LastSync(ctx, "cafeteria_menus")
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, last.Equal(later))
	})

	t.Run("SourcesAreIndependent", func(t *testing.T) {
		syncDAO := dao.NewSyncStatusDAO(openTestDB(t))
		syncDAO.Now = func() time.Time { return base }

		require.NoError(t, syncDAO.MarkSynced(ctx, "cafeteria_menus"))

		due, err := syncDAO.NeedsSync(ctx, "other_feed", ttl)
		require.NoError(t, err)
		assert.True(t, due)
	})
}
