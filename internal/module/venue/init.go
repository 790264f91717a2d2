package venue

import (
	"log/slog"

	"campus-activity-system/internal/global/logger"
)

var log *slog.Logger

type ModuleVenue struct{}

func (v *ModuleVenue) GetName() string {
	return "Venue"
}

func (v *ModuleVenue) Init() {
	log = logger.New("Venue")
}
