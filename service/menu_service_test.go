// service/menu_service_test.go
package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-api/dao"
	"github.com/campushub/campus-api/db"
	campus_errors "github.com/campushub/campus-api/errors"
	logger "github.com/campushub/campus-api/logging"
	"github.com/campushub/campus-api/model"
	"github.com/campushub/campus-api/service"
	test_mock "github.com/campushub/campus-api/test/mock"
	"github.com/campushub/campus-api/util"
)

type menuServiceFixture struct {
	service *service.MenuService
	fetcher *test_mock.MockMenuFetcher
	menuDAO *dao.MenuDAO
	syncDAO *dao.SyncStatusDAO
	db      *sql.DB
}

func newMenuServiceFixture(t *testing.T, ttl time.Duration) *menuServiceFixture {
	t.Helper()

	handle, err := db.Open(":memory:")
	require.NoError(t, err)
	handle.SetMaxOpenConns(1)
	require.NoError(t, db.EnsureSchema(handle))
	t.Cleanup(func() { handle.Close() })

	validation := util.NewValidationUtil(time.Date(2012, time.January, 1, 0, 0, 0, 0, time.UTC))
	menuDAO := dao.NewMenuDAO(handle, validation)
	syncDAO := dao.NewSyncStatusDAO(handle)
	fetcher := new(test_mock.MockMenuFetcher)

	svc := service.NewMenuService(
		menuDAO,
		syncDAO,
		fetcher,
		util.NewCacheService(),
		util.NewNotificationService(),
		util.NewEventBus(),
		nil,
		ttl,
	)

	return &menuServiceFixture{
		service: svc,
		fetcher: fetcher,
		menuDAO: menuDAO,
		syncDAO: syncDAO,
		db:      handle,
	}
}

func testFeed() *model.MenuFeed {
	return &model.MenuFeed{
		Menus: []model.MenuFeedItem{
			{ID: "25544", MensaID: "411", Date: "2026-09-01", TypeShort: "tg", TypeLong: "Tagesgericht 3", TypeNr: "3", Name: "Cordon bleu"},
			{ID: "25545", MensaID: "411", Date: "2026-09-01", TypeShort: "ae", TypeLong: "Aktionsessen 1", TypeNr: "1", Name: "Schweinebraten"},
		},
		Addendums: []model.MenuFeedItem{
			{MensaID: "411", Date: "2026-09-01", TypeShort: "bei", TypeLong: "Beilagen", Name: "Pommes frites"},
		},
	}
}

func TestMenuService(t *testing.T) {
	// Initialize logger
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctx := context.Background()

	t.Run("SyncMenus_FirstRunImportsFeed", func(t *testing.T) {
		fixture := newMenuServiceFixture(t, time.Hour)
		fixture.fetcher.On("FetchMenuFeed", mock.Anything).Return(testFeed(), nil).Once()

		count, err := fixture.service.SyncMenus(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		total, err := fixture.menuDAO.CountMenus(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, total)

		// Addendum records carry the fixed side-dish ordinal and no
		// upstream id.
		menus, err := fixture.menuDAO.MenusFor(ctx, 411, "2026-09-01")
		require.NoError(t, err)
		require.Len(t, menus, 3)

		var addendum *model.CafeteriaMenu
		for i := range menus {
			if menus[i].Name == "Pommes frites" {
				addendum = &menus[i]
			}
		}
		require.NotNil(t, addendum)
		assert.Equal(t, 10, addendum.TypeNr)

		fixture.fetcher.AssertExpectations(t)
	})

	t.Run("SyncMenus_SkipsWhileCacheIsFresh", func(t *testing.T) {
		fixture := newMenuServiceFixture(t, time.Hour)
		fixture.fetcher.On("FetchMenuFeed", mock.Anything).Return(testFeed(), nil).Once()

		_, err := fixture.service.SyncMenus(ctx, false)
		require.NoError(t, err)

		// Within the TTL the gate short-circuits before the fetch.
		count, err := fixture.service.SyncMenus(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		fixture.fetcher.AssertNumberOfCalls(t, "FetchMenuFeed", 1)
	})

	t.Run("SyncMenus_ForceBypassesGate", func(t *testing.T) {
		fixture := newMenuServiceFixture(t, time.Hour)
		fixture.fetcher.On("FetchMenuFeed", mock.Anything).Return(testFeed(), nil).Twice()

		_, err := fixture.service.SyncMenus(ctx, false)
		require.NoError(t, err)

		count, err := fixture.service.SyncMenus(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		fixture.fetcher.AssertNumberOfCalls(t, "FetchMenuFeed", 2)
	})

	t.Run("SyncMenus_UnavailableFeedSkipsCycleSilently", func(t *testing.T) {
		fixture := newMenuServiceFixture(t, time.Hour)
		fixture.fetcher.On("FetchMenuFeed", mock.Anything).Return(nil, errors.New("connection refused"))

		count, err := fixture.service.SyncMenus(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		total, err := fixture.menuDAO.CountMenus(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, total)

		// A skipped cycle leaves the gate open for the next attempt.
		due, err := fixture.syncDAO.NeedsSync(ctx, service.MenuSyncSource, time.Hour)
		require.NoError(t, err)
		assert.True(t, due)
	})

	t.Run("SyncMenus_InvalidFeedRecordKeepsPreviousCache", func(t *testing.T) {
		fixture := newMenuServiceFixture(t, time.Hour)
		fixture.fetcher.On("FetchMenuFeed", mock.Anything).Return(testFeed(), nil).Once()

		_, err := fixture.service.SyncMenus(ctx, false)
		require.NoError(t, err)

		badFeed := testFeed()
		badFeed.Menus[1].Name = ""
		fixture.fetcher.On("FetchMenuFeed", mock.Anything).Return(badFeed, nil).Once()

		_, err = fixture.service.SyncMenus(ctx, true)
		var validationErr *campus_errors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "name", validationErr.Field)

		// The rejected batch rolled back in full.
		total, err := fixture.menuDAO.CountMenus(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
	})

	t.Run("SyncMenus_NonNumericFeedFieldRejected", func(t *testing.T) {
		fixture := newMenuServiceFixture(t, time.Hour)

		badFeed := testFeed()
		badFeed.Menus[0].MensaID = "mensa-garching"
		fixture.fetcher.On("FetchMenuFeed", mock.Anything).Return(badFeed, nil).Once()

		_, err := fixture.service.SyncMenus(ctx, true)
		var validationErr *campus_errors.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "mensa_id", validationErr.Field)

		total, err := fixture.menuDAO.CountMenus(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
	})

	t.Run("GetMenus_ReadsFromCacheAfterSync", func(t *testing.T) {
		fixture := newMenuServiceFixture(t, time.Hour)
		fixture.fetcher.On("FetchMenuFeed", mock.Anything).Return(testFeed(), nil).Once()

		_, err := fixture.service.SyncMenus(ctx, false)
		require.NoError(t, err)

		menus, err := fixture.service.GetMenus(ctx, 411, "2026-09-01")
		require.NoError(t, err)
		assert.Len(t, menus, 3)

		// The day dish sorts first on the menu card.
		assert.Equal(t, "tg", menus[0].TypeShort)
	})

	t.Run("GetMenuDates_EmptyCache", func(t *testing.T) {
		fixture := newMenuServiceFixture(t, time.Hour)

		dates, err := fixture.service.GetMenuDates(ctx)
		require.NoError(t, err)
		assert.Empty(t, dates)
	})
}
