package like

import (
	"log/slog"

	"campus-activity-system/internal/global/logger"
)

var log *slog.Logger

type ModuleLike struct{}

func (l *ModuleLike) GetName() string {
	return "Like"
}

func (l *ModuleLike) Init() {
	log = logger.New("Like")
}
