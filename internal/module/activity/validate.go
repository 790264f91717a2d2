package activity

import (
	"time"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// overlaps 判断两个半开区间 [s1,e1) 与 [s2,e2) 是否重叠
// 首尾相接（e1 == s2）不算冲突
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// countConflicts 统计同一场地内与候选时段重叠的其他活动数
// excludeID 非零时排除活动自身（编辑场景）
func countConflicts(db *gorm.DB, venueID uint, start, end time.Time, excludeID uint) (int64, error) {
	query := db.Model(&model.Activity{}).
		Where("venue_id = ?", venueID).
		Where("start_time < ? AND end_time > ?", end, start)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// validateSchedule 创建/编辑活动的校验链，任一步失败立即返回、不落库
// 顺序：时间区间 → 人数为正 → 场地存在 → 容量 → 场地时间冲突
// 未选场地时跳过容量与冲突检查
func validateSchedule(start, end time.Time, maxParticipants int, venueID *uint, excludeID uint) *response.Error {
	if !end.After(start) {
		return response.ErrInvalidRequest.WithTips("结束时间必须晚于开始时间")
	}
	if maxParticipants <= 0 {
		return response.ErrInvalidRequest.WithTips("参与人数必须是正整数")
	}

	if venueID == nil {
		return nil
	}

	var venue model.Venue
	if err := database.DB.First(&venue, *venueID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ErrInvalidRequest.WithTips("选择的场地不存在")
		}
		return response.ErrDatabase.WithOrigin(err)
	}

	// 容量检查先于冲突检查
	if maxParticipants > venue.Capacity {
		return response.ErrInvalidRequest.WithTips("活动最大参与人数超过场地容量")
	}

	conflicts, err := countConflicts(database.DB, *venueID, start, end, excludeID)
	if err != nil {
		return response.ErrDatabase.WithOrigin(err)
	}
	if conflicts > 0 {
		return response.ErrConflict.WithTips("场地在该时间段已被占用，请选择其他时间或场地")
	}
	return nil
}
