package review

import (
	"log/slog"

	"campus-activity-system/internal/global/logger"
)

var log *slog.Logger

type ModuleReview struct{}

func (rv *ModuleReview) GetName() string {
	return "Review"
}

func (rv *ModuleReview) Init() {
	log = logger.New("Review")
}
