package activitytype

import (
	"log/slog"

	"campus-activity-system/internal/global/logger"
)

var log *slog.Logger

type ModuleActivityType struct{}

func (t *ModuleActivityType) GetName() string {
	return "ActivityType"
}

func (t *ModuleActivityType) Init() {
	log = logger.New("ActivityType")
}
