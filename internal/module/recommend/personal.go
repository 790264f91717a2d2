package recommend

import (
	"strings"
	"time"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/internal/module/activity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// harvestInterests 从参与历史里提取类型与标签偏好
// 标签去重且保留首次出现顺序，空白 token 丢弃
func harvestInterests(activities []model.Activity) (typeIDs []uint, tags []string) {
	typeSeen := make(map[uint]bool)
	tagSeen := make(map[string]bool)
	for _, a := range activities {
		if a.ActivityTypeID != nil && !typeSeen[*a.ActivityTypeID] {
			typeSeen[*a.ActivityTypeID] = true
			typeIDs = append(typeIDs, *a.ActivityTypeID)
		}
		for _, raw := range strings.Split(a.Tags, ",") {
			tag := strings.TrimSpace(raw)
			if tag == "" || tagSeen[strings.ToLower(tag)] {
				continue
			}
			tagSeen[strings.ToLower(tag)] = true
			tags = append(tags, tag)
		}
	}
	return typeIDs, tags
}

// candidateQuery 推荐候选基础条件：未开始、已过审、排除已报名的
func candidateQuery(now time.Time, joinedIDs []uint) *gorm.DB {
	query := database.DB.Model(&model.Activity{}).
		Preload("Venue").Preload("ActivityType").Preload("Organizer").
		Where("status = ? AND approved = ? AND start_time > ?",
			model.ActivityStatusActive, true, now)
	if len(joinedIDs) > 0 {
		query = query.Where("id NOT IN ?", joinedIDs)
	}
	return query
}

// Personalized 个性化推荐
// 仅匿名或无参与历史时退回热门榜；否则先按同类型最多取 5 个，
// 不足时用标签匹配的异类型活动补满，两个池子都不含已报名的活动
func Personalized(c *gin.Context) {
	now := time.Now().UTC()

	payload, authed := jwt.GetUserPayload(c)
	if !authed {
		fallbackToHot(c, now, "anonymous")
		return
	}

	var history []model.Activity
	if err := database.DB.Model(&model.Activity{}).
		Joins("JOIN participation ON participation.activity_id = activity.id").
		Where("participation.user_id = ?", payload.UserID).
		Order("participation.registered_at DESC").
		Find(&history).Error; err != nil {
		log.Error("查询参与历史失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if len(history) == 0 {
		fallbackToHot(c, now, "no_history")
		return
	}

	var joinedIDs []uint
	if err := database.DB.Model(&model.Participation{}).
		Where("user_id = ?", payload.UserID).
		Pluck("activity_id", &joinedIDs).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	typeIDs, tags := harvestInterests(history)

	// 第一池：同类型活动，最新的优先
	var picked []model.Activity
	if len(typeIDs) > 0 {
		if err := candidateQuery(now, joinedIDs).
			Where("activity_type_id IN ?", typeIDs).
			Order("created_at DESC").Limit(recommendSize).
			Find(&picked).Error; err != nil {
			log.Error("查询同类型推荐失败", "error", err, "user_id", payload.UserID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	}

	// 第二池：标签子串匹配的异类型活动，补满 5 个
	if len(picked) < recommendSize && len(tags) > 0 {
		pickedIDs := make([]uint, 0, len(picked))
		for _, a := range picked {
			pickedIDs = append(pickedIDs, a.ID)
		}

		query := candidateQuery(now, joinedIDs)
		if len(pickedIDs) > 0 {
			query = query.Where("id NOT IN ?", pickedIDs)
		}
		if len(typeIDs) > 0 {
			query = query.Where("activity_type_id IS NULL OR activity_type_id NOT IN ?", typeIDs)
		}

		tagCond := database.DB
		for _, tag := range tags {
			tagCond = tagCond.Or("LOWER(tags) LIKE ?", "%"+strings.ToLower(tag)+"%")
		}
		query = query.Where(tagCond)

		var filled []model.Activity
		if err := query.Order("created_at DESC").
			Limit(recommendSize - len(picked)).
			Find(&filled).Error; err != nil {
			log.Error("查询标签推荐失败", "error", err, "user_id", payload.UserID)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		picked = append(picked, filled...)
	}

	// 池子为空时返回空列表，不退回热门榜：
	// 热门榜不按用户过滤，退榜会把已报名的活动推回给有历史的用户
	views := activity.NewViews(picked, now)
	if err := activity.AttachUserFlags(views, payload.UserID); err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"activities": views,
		"source":     "personalized",
	})
}

// fallbackToHot 匿名或无参与历史时退回热门榜前 8
func fallbackToHot(c *gin.Context, now time.Time, reason string) {
	views, err := buildHotBoard(now)
	if err != nil {
		log.Error("推荐退回热门榜失败", "error", err, "reason", reason)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"activities": views,
		"source":     "hot",
		"reason":     reason,
	})
}
