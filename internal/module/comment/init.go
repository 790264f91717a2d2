package comment

import (
	"log/slog"

	"campus-activity-system/internal/global/logger"
)

var log *slog.Logger

type ModuleComment struct{}

func (cm *ModuleComment) GetName() string {
	return "Comment"
}

func (cm *ModuleComment) Init() {
	log = logger.New("Comment")
}
