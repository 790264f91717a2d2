package recommend

import (
	"encoding/json"
	"time"

	"campus-activity-system/internal/global/cache"
	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/internal/module/activity"

	"github.com/gin-gonic/gin"
)

// hotBoardTTL 热门榜缓存时长，短 TTL 兜底点赞/评论带来的热度漂移
const hotBoardTTL = 60 * time.Second

// HotView 热门榜出参，附带热度分
type HotView struct {
	activity.View
	HotScore     float64 `json:"hot_score"`
	CommentCount int64   `json:"comment_count"`
}

// hotCandidates 热门榜候选：审核通过且未开始的活动
func hotCandidates(now time.Time) ([]model.Activity, error) {
	var activities []model.Activity
	err := database.DB.Preload("Venue").Preload("ActivityType").Preload("Organizer").
		Where("status = ? AND approved = ? AND start_time > ?",
			model.ActivityStatusActive, true, now).
		Order("created_at DESC").Find(&activities).Error
	return activities, err
}

// commentCountsFor 批量统计评论数
func commentCountsFor(activities []model.Activity) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(activities))
	if len(activities) == 0 {
		return counts, nil
	}

	ids := make([]uint, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}

	type row struct {
		ActivityID uint
		Total      int64
	}
	var rows []row
	if err := database.DB.Model(&model.Comment{}).
		Select("activity_id, COUNT(*) AS total").
		Where("activity_id IN ?", ids).
		Group("activity_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.ActivityID] = r.Total
	}
	return counts, nil
}

// buildHotBoard 计算热门榜前 8
func buildHotBoard(now time.Time) ([]HotView, error) {
	candidates, err := hotCandidates(now)
	if err != nil {
		return nil, err
	}

	counts, err := commentCountsFor(candidates)
	if err != nil {
		return nil, err
	}

	ranked := rankByScore(candidates, counts, hotBoardSize)
	views := make([]HotView, 0, len(ranked))
	for _, s := range ranked {
		views = append(views, HotView{
			View:         activity.NewView(s.activity, now),
			HotScore:     s.score,
			CommentCount: counts[s.activity.ID],
		})
	}
	return views, nil
}

// HotBoard 热门活动榜，优先读缓存
func HotBoard(c *gin.Context) {
	ctx := c.Request.Context()
	if raw, ok := cache.GetJSON(ctx, cache.KeyHotBoard); ok {
		var views []HotView
		if err := json.Unmarshal(raw, &views); err == nil {
			response.Success(c, gin.H{
				"activities": views,
				"cached":     true,
			})
			return
		}
		// 缓存损坏时删掉重算
		cache.Delete(ctx, cache.KeyHotBoard)
	}

	now := time.Now().UTC()
	views, err := buildHotBoard(now)
	if err != nil {
		log.Error("计算热门榜失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if raw, err := json.Marshal(views); err == nil {
		cache.SetJSON(ctx, cache.KeyHotBoard, raw, hotBoardTTL)
	}

	response.Success(c, gin.H{
		"activities": views,
		"cached":     false,
	})
}
