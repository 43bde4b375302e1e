// service/services.go
package service

import (
	"database/sql"
	"time"

	"github.com/campushub/campus-api/audit"
	"github.com/campushub/campus-api/client"
	"github.com/campushub/campus-api/dao"
	"github.com/campushub/campus-api/signature"
	"github.com/campushub/campus-api/util"
)

type Services struct {
	Menu IMenuService
	Chat IChatService
}

func InitializeServices(
	sqlDB *sql.DB,
	fetcher client.MenuFetcher,
	verifier *signature.Verifier,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	menuSyncTTL time.Duration,
) (*Services, error) {
	menuDAO := dao.NewMenuDAO(sqlDB, validationUtil)
	syncStatusDAO := dao.NewSyncStatusDAO(sqlDB)

	services := &Services{
		Menu: NewMenuService(menuDAO, syncStatusDAO, fetcher, cacheService, notificationSvc, eventBus, auditService, menuSyncTTL),
		Chat: NewChatService(verifier, auditService),
	}

	return services, nil
}
