// util/notification_service.go

package util

import (
	"context"

	"go.uber.org/zap"

	logger "github.com/campushub/campus-api/logging"
)

type NotificationService struct {
	// You might want to add dependencies here, such as a message queue client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyMenusSynced announces a fresh menu import to interested
// systems. The current implementation only logs; a push gateway or
// message queue would hook in here.
func (n *NotificationService) NotifyMenusSynced(ctx context.Context, count int) error {
	logger.Info("NOTIFICATION: Cafeteria menus refreshed",
		zap.Int("count", count))
	return nil
}

// NotifyChatMessageRejected flags a message whose signature matched
// no known public key.
func (n *NotificationService) NotifyChatMessageRejected(ctx context.Context) error {
	logger.Info("NOTIFICATION: Chat message rejected")
	return nil
}

func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	// Logic to notify all system administrators
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
