// Package webhook 将审核结果推送到配置的外部端点（如群机器人）
package webhook

import (
	"log/slog"
	"time"

	"campus-activity-system/config"
	"campus-activity-system/internal/global/logger"

	"github.com/go-resty/resty/v2"
)

var (
	client *resty.Client
	log    *slog.Logger
)

func Init() {
	log = logger.New("Webhook")
	client = resty.New().SetTimeout(10 * time.Second)
}

// ReviewEvent 审核结果事件
type ReviewEvent struct {
	ActivityID    uint   `json:"activity_id"`
	ActivityTitle string `json:"activity_title"`
	OrganizerID   uint   `json:"organizer_id"`
	ReviewStatus  string `json:"review_status"`
	ReviewComment string `json:"review_comment"`
	ReviewedAt    int64  `json:"reviewed_at"`
}

// PushReview 推送审核结果，URL 未配置时跳过
// 推送失败只记日志，不影响审核事务本身
func PushReview(event ReviewEvent) {
	cfg := config.Get().Webhook
	if cfg.URL == "" {
		return
	}

	req := client.R().SetBody(event)
	if cfg.Secret != "" {
		req.SetHeader("X-Webhook-Secret", cfg.Secret)
	}

	resp, err := req.Post(cfg.URL)
	if err != nil {
		log.Warn("审核结果推送失败", "error", err, "activity_id", event.ActivityID)
		return
	}
	if resp.IsError() {
		log.Warn("审核结果推送被拒绝", "status", resp.StatusCode(), "activity_id", event.ActivityID)
		return
	}
	log.Info("审核结果已推送", "activity_id", event.ActivityID, "review_status", event.ReviewStatus)
}
