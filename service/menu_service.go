// service/menu_service.go
package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campushub/campus-api/audit"
	"github.com/campushub/campus-api/client"
	"github.com/campushub/campus-api/dao"
	campus_errors "github.com/campushub/campus-api/errors"
	logger "github.com/campushub/campus-api/logging"
	"github.com/campushub/campus-api/model"
	"github.com/campushub/campus-api/util"
	helper_util "github.com/campushub/campus-api/util/helper"
)

// MenuSyncSource keys the TTL gate row for the cafeteria menu feed.
const MenuSyncSource = "cafeteria_menus"

// Addendum records carry no ordinal of their own; the menu card sorts
// them after every regular type.
const addendumTypeNr = 10

// IMenuService defines the menu cache operations
type IMenuService interface {
	SyncMenus(ctx context.Context, force bool) (int, error)
	GetMenus(ctx context.Context, cafeteriaID int, date string) ([]model.CafeteriaMenu, error)
	GetMenuDates(ctx context.Context) ([]string, error)
}

// MenuService keeps the local menu cache in sync with the remote feed
// and serves reads from it.
type MenuService struct {
	menuDAO         *dao.MenuDAO
	syncStatusDAO   *dao.SyncStatusDAO
	fetcher         client.MenuFetcher
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	auditService    audit.Service
	syncTTL         time.Duration
}

var _ IMenuService = &MenuService{}

// NewMenuService creates a new instance of MenuService
func NewMenuService(
	menuDAO *dao.MenuDAO,
	syncStatusDAO *dao.SyncStatusDAO,
	fetcher client.MenuFetcher,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	auditService audit.Service,
	syncTTL time.Duration,
) *MenuService {
	service := &MenuService{
		menuDAO:         menuDAO,
		syncStatusDAO:   syncStatusDAO,
		fetcher:         fetcher,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		auditService:    auditService,
		syncTTL:         syncTTL,
	}

	// Set up event subscriptions
	eventBus.Subscribe("menus.synced", service.handleMenusSynced)

	return service
}

func (s *MenuService) handleMenusSynced(ctx context.Context, event util.Event) error {
	count := event.Payload.(int)
	logger.Info("Menus synced event received", zap.Int("count", count))

	if err := s.notificationSvc.NotifyMenusSynced(ctx, count); err != nil {
		logger.Warn("Failed to send menu sync notification", zap.Error(err))
	}

	return nil
}

// SyncMenus refreshes the local menu cache from the remote feed. The
// fetch is skipped while the last import is younger than the sync TTL
// unless force is set. Returns the number of records imported; zero
// with a nil error means the cycle was skipped.
func (s *MenuService) SyncMenus(ctx context.Context, force bool) (int, error) {
	if !force {
		due, err := s.syncStatusDAO.NeedsSync(ctx, MenuSyncSource, s.syncTTL)
		if err != nil {
			return 0, err
		}
		if !due {
			logger.Debug("Menu cache still fresh, skipping sync")
			return 0, nil
		}
	}

	locked, err := s.cacheService.LockMenuSync(ctx)
	if err != nil {
		// Lock service being down is no reason to serve stale menus.
		logger.Warn("Menu sync lock unavailable, proceeding without it", zap.Error(err))
	} else if !locked {
		return 0, campus_errors.ErrSyncInProgress
	}
	defer func() {
		if err := s.cacheService.UnlockMenuSync(ctx); err != nil {
			logger.Warn("Failed to release menu sync lock", zap.Error(err))
		}
	}()

	runID := uuid.New().String()

	feed, err := s.fetcher.FetchMenuFeed(ctx)
	if err != nil {
		// A missing feed skips the cycle silently; the cache and the
		// sync status stay untouched and the next window retries.
		logger.Warn("Menu feed unavailable, skipping sync cycle",
			zap.Error(err),
			zap.String("runID", runID))
		return 0, nil
	}

	menus, err := feedToMenus(feed)
	if err != nil {
		s.logSyncRun(ctx, runID, 0, force, false, err)
		return 0, err
	}

	count, err := s.menuDAO.ReplaceAll(ctx, menus)
	if err != nil {
		logger.Error("Menu import aborted", zap.Error(err), zap.String("runID", runID))
		s.logSyncRun(ctx, runID, 0, force, false, err)
		return 0, err
	}

	// Recorded only after the data commit; losing this write just
	// means the next gate check re-syncs early.
	if err := s.syncStatusDAO.MarkSynced(ctx, MenuSyncSource); err != nil {
		logger.Warn("Failed to record menu sync time", zap.Error(err))
	}

	if err := s.cacheService.InvalidateMenus(ctx); err != nil {
		logger.Warn("Failed to invalidate cached menus", zap.Error(err))
	}

	// Publish event for asynchronous processing
	s.eventBus.Publish(ctx, "menus.synced", count)

	s.logSyncRun(ctx, runID, count, force, true, nil)
	logger.Info("Menu sync completed",
		zap.Int("records", count),
		zap.Bool("force", force),
		zap.String("runID", runID))
	return count, nil
}

// GetMenus retrieves the menus for one cafeteria and day
func (s *MenuService) GetMenus(ctx context.Context, cafeteriaID int, date string) ([]model.CafeteriaMenu, error) {
	// Try to get from cache first
	cachedMenus, err := s.cacheService.GetMenus(ctx, cafeteriaID, date)
	if err == nil && cachedMenus != nil {
		return cachedMenus, nil
	}

	menus, err := s.menuDAO.MenusFor(ctx, cafeteriaID, date)
	if err != nil {
		logger.Error("Error retrieving menus",
			zap.Error(err),
			zap.Int("cafeteriaID", cafeteriaID),
			zap.String("date", date))
		return nil, campus_errors.ErrInternalServer
	}

	// Update cache
	if err := s.cacheService.SetMenus(ctx, cafeteriaID, date, menus); err != nil {
		logger.Warn("Failed to cache menus", zap.Error(err), zap.Int("cafeteriaID", cafeteriaID))
	}

	return menus, nil
}

// GetMenuDates retrieves the upcoming dates that have cached menus
func (s *MenuService) GetMenuDates(ctx context.Context) ([]string, error) {
	dates, err := s.menuDAO.MenuDates(ctx)
	if err != nil {
		logger.Error("Error listing menu dates", zap.Error(err))
		return nil, campus_errors.ErrInternalServer
	}
	return dates, nil
}

func (s *MenuService) logSyncRun(ctx context.Context, runID string, records int, forced, success bool, runErr error) {
	if s.auditService == nil {
		return
	}

	log := audit.SyncLog{
		Timestamp: time.Now(),
		RunID:     runID,
		Source:    MenuSyncSource,
		Records:   records,
		Forced:    forced,
		Success:   success,
	}
	if runErr != nil {
		log.Error = runErr.Error()
	}

	if err := s.auditService.LogSync(ctx, log); err != nil {
		logger.Warn("Failed to write sync audit log", zap.Error(err), zap.String("runID", runID))
	}
}

// feedToMenus flattens the feed document into cache records. Regular
// items keep their upstream id and ordinal; addendum items get a
// synthesized record with the fixed addendum ordinal, matching how
// the menu card groups side dishes.
func feedToMenus(feed *model.MenuFeed) ([]model.CafeteriaMenu, error) {
	menus := make([]model.CafeteriaMenu, 0, len(feed.Menus)+len(feed.Addendums))

	for _, item := range feed.Menus {
		menu, err := feedItemToMenu(item, false)
		if err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}

	for _, item := range feed.Addendums {
		menu, err := feedItemToMenu(item, true)
		if err != nil {
			return nil, err
		}
		menus = append(menus, menu)
	}

	return menus, nil
}

func feedItemToMenu(item model.MenuFeedItem, addendum bool) (model.CafeteriaMenu, error) {
	cafeteriaID, err := strconv.Atoi(item.MensaID)
	if err != nil {
		return model.CafeteriaMenu{}, &campus_errors.ValidationError{Field: "mensa_id", Reason: "not a number"}
	}

	date, err := helper_util.ParseDate(item.Date)
	if err != nil {
		return model.CafeteriaMenu{}, &campus_errors.ValidationError{Field: "date", Reason: "not an ISO date"}
	}

	menu := model.CafeteriaMenu{
		CafeteriaID: cafeteriaID,
		Date:        date,
		TypeShort:   item.TypeShort,
		TypeLong:    item.TypeLong,
		Name:        item.Name,
	}

	if addendum {
		menu.TypeNr = addendumTypeNr
		return menu, nil
	}

	id, err := strconv.ParseInt(item.ID, 10, 64)
	if err != nil {
		return model.CafeteriaMenu{}, &campus_errors.ValidationError{Field: "id", Reason: "not a number"}
	}
	typeNr, err := strconv.Atoi(item.TypeNr)
	if err != nil {
		return model.CafeteriaMenu{}, &campus_errors.ValidationError{Field: "type_nr", Reason: "not a number"}
	}
	menu.ID = id
	menu.TypeNr = typeNr
	return menu, nil
}
