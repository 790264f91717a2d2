package recommend

import (
	"log/slog"

	"campus-activity-system/internal/global/logger"
)

var log *slog.Logger

type ModuleRecommend struct{}

func (rc *ModuleRecommend) GetName() string {
	return "Recommend"
}

func (rc *ModuleRecommend) Init() {
	log = logger.New("Recommend")
}
