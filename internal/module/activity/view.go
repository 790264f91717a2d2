package activity

import (
	"time"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/model"
	"campus-activity-system/tools"
)

// View 活动出参：附带 UTC+8 展示时间、派生状态与当前用户标记
type View struct {
	model.Activity
	DisplayStartTime string `json:"display_start_time"`
	DisplayEndTime   string `json:"display_end_time"`
	DisplayCreatedAt string `json:"display_created_at"`
	CurrentStatus    string `json:"current_status"`
	IsJoined         bool   `json:"is_joined"`
	IsLiked          bool   `json:"is_liked"`
}

// NewView 从活动模型构造出参，派生状态按 now 重新求值
func NewView(a model.Activity, now time.Time) View {
	return View{
		Activity:         a,
		DisplayStartTime: tools.FormatCST(a.StartTime),
		DisplayEndTime:   tools.FormatCST(a.EndTime),
		DisplayCreatedAt: tools.FormatCST(a.CreatedAt),
		CurrentStatus:    a.CurrentStatus(now),
	}
}

// NewViews 批量构造
func NewViews(activities []model.Activity, now time.Time) []View {
	views := make([]View, 0, len(activities))
	for _, a := range activities {
		views = append(views, NewView(a, now))
	}
	return views
}

// AttachUserFlags 为登录用户批量标记已参加/已点赞
func AttachUserFlags(views []View, userID uint) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}

	var joined []uint
	if err := database.DB.Model(&model.Participation{}).
		Where("user_id = ? AND activity_id IN ?", userID, ids).
		Pluck("activity_id", &joined).Error; err != nil {
		return err
	}

	var liked []uint
	if err := database.DB.Model(&model.Like{}).
		Where("user_id = ? AND activity_id IN ?", userID, ids).
		Pluck("activity_id", &liked).Error; err != nil {
		return err
	}

	joinedSet := make(map[uint]bool, len(joined))
	for _, id := range joined {
		joinedSet[id] = true
	}
	likedSet := make(map[uint]bool, len(liked))
	for _, id := range liked {
		likedSet[id] = true
	}

	for i := range views {
		views[i].IsJoined = joinedSet[views[i].ID]
		views[i].IsLiked = likedSet[views[i].ID]
	}
	return nil
}
