package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/bistro-service/internal/service"
)

// StartNotificationWorker hooks the notification service into the event
// stream. Mail delivery itself runs on detached goroutines inside the
// service, so there is no loop to manage here.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification worker subscribed")
}
