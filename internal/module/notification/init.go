package notification

import (
	"log/slog"

	"campus-activity-system/internal/global/logger"
)

var log *slog.Logger

type ModuleNotification struct{}

func (n *ModuleNotification) GetName() string {
	return "Notification"
}

func (n *ModuleNotification) Init() {
	log = logger.New("Notification")
}
