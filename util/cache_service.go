// util/cache_service.go

package util

import (
	"context"
	"time"

	"github.com/campushub/campus-api/db"
	"github.com/campushub/campus-api/model"
)

const menuSyncLock = "sync:cafeteria_menus"

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetMenus(ctx context.Context, cafeteriaID int, date string) ([]model.CafeteriaMenu, error) {
	return db.GetCachedMenus(ctx, cafeteriaID, date)
}

func (c *CacheService) SetMenus(ctx context.Context, cafeteriaID int, date string, menus []model.CafeteriaMenu) error {
	return db.CacheMenus(ctx, cafeteriaID, date, menus)
}

func (c *CacheService) InvalidateMenus(ctx context.Context) error {
	return db.InvalidateCachedMenus(ctx)
}

// LockMenuSync guards against concurrent duplicate imports of the
// menu feed. The lock expires on its own if a sync dies mid-run.
func (c *CacheService) LockMenuSync(ctx context.Context) (bool, error) {
	return db.LockResource(ctx, menuSyncLock, time.Minute)
}

func (c *CacheService) UnlockMenuSync(ctx context.Context) error {
	return db.UnlockResource(ctx, menuSyncLock)
}
