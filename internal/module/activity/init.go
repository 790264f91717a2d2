package activity

import (
	"log/slog"

	"campus-activity-system/internal/global/logger"
	"campus-activity-system/internal/global/posterbed"
)

var log *slog.Logger

type ModuleActivity struct{}

func (a *ModuleActivity) GetName() string {
	return "Activity"
}

func (a *ModuleActivity) Init() {
	log = logger.New("Activity")
	posterbed.Init()
}
