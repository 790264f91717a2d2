package review

import (
	"fmt"
	"time"

	"campus-activity-system/internal/global/cache"
	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/global/webhook"
	"campus-activity-system/internal/model"
	"campus-activity-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListPending 待审核活动列表，先到先审
func ListPending(c *gin.Context) {
	var activities []model.Activity
	if err := database.DB.Preload("Organizer").Preload("Venue").Preload("ActivityType").
		Where("review_status = ?", model.ReviewStatusPending).
		Order("created_at ASC").Find(&activities).Error; err != nil {
		log.Error("查询待审核活动失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	type pendingView struct {
		model.Activity
		DisplayStartTime string `json:"display_start_time"`
		DisplayEndTime   string `json:"display_end_time"`
		DisplayCreatedAt string `json:"display_created_at"`
	}
	views := make([]pendingView, 0, len(activities))
	for _, a := range activities {
		views = append(views, pendingView{
			Activity:         a,
			DisplayStartTime: tools.FormatCST(a.StartTime),
			DisplayEndTime:   tools.FormatCST(a.EndTime),
			DisplayCreatedAt: tools.FormatCST(a.CreatedAt),
		})
	}

	response.Success(c, gin.H{
		"activities": views,
		"total":      len(views),
	})
}

// DecideReq 审核决定请求
type DecideReq struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment"` // 审核意见，驳回时建议填写
}

// DecideActivity 审核活动，每个活动只能被裁决一次
// 通过则活动上线，驳回则保留记录供发起人修改后重新提交
func DecideActivity(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req DecideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	id := c.Param("id")
	var activity model.Activity
	if err := database.DB.First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	now := time.Now().UTC()
	comment := req.Comment
	var status, reviewStatus string
	if req.Approve {
		status = model.ActivityStatusActive
		reviewStatus = model.ReviewStatusApproved
		if comment == "" {
			comment = "审核通过"
		}
	} else {
		status = model.ActivityStatusRejected
		reviewStatus = model.ReviewStatusRejected
		if comment == "" {
			comment = "审核未通过"
		}
	}

	var notification model.Notification
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		// 条件更新保证同一活动只被裁决一次，并发重复审核会落空
		result := tx.Model(&model.Activity{}).
			Where("id = ? AND review_status = ?", activity.ID, model.ReviewStatusPending).
			Updates(map[string]any{
				"status":         status,
				"review_status":  reviewStatus,
				"review_comment": comment,
				"review_time":    now,
				"reviewer_id":    payload.UserID,
				"approved":       req.Approve,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return response.ErrConflict.WithTips("该活动已被审核")
		}

		verdict := "通过"
		if !req.Approve {
			verdict = "未通过"
		}
		notification = model.Notification{
			UserID:     activity.OrganizerID,
			ActivityID: activity.ID,
			Message:    fmt.Sprintf("您的活动「%s」审核%s：%s", activity.Title, verdict, comment),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		var e *response.Error
		if errors.As(err, &e) {
			response.Fail(c, e)
			return
		}
		log.Error("审核活动失败", "error", err, "activity_id", activity.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 过审活动立即进入推荐候选，热门榜缓存需失效
	if req.Approve {
		cache.Delete(c.Request.Context(), cache.KeyHotBoard)
	}

	go webhook.PushReview(webhook.ReviewEvent{
		ActivityID:    activity.ID,
		ActivityTitle: activity.Title,
		OrganizerID:   activity.OrganizerID,
		ReviewStatus:  reviewStatus,
		ReviewComment: comment,
		ReviewedAt:    now.UnixMilli(),
	})

	log.Info("活动审核完成", "activity_id", activity.ID, "reviewer_id", payload.UserID, "approve", req.Approve)
	response.Success(c, gin.H{
		"review_status": reviewStatus,
	})
}

// ReviewHistoryReq 审核历史筛选
type ReviewHistoryReq struct {
	Status   string `form:"status"` // approved / rejected
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// ReviewHistory 当前审核员经手的审核记录，最近裁决在前
func ReviewHistory(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ReviewHistoryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 9
	}

	query := database.DB.Model(&model.Activity{}).
		Preload("Organizer").Preload("Venue").Preload("ActivityType").
		Where("review_status <> ? AND reviewer_id = ?", model.ReviewStatusPending, payload.UserID)
	switch req.Status {
	case model.ReviewStatusApproved, model.ReviewStatusRejected:
		query = query.Where("review_status = ?", req.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var activities []model.Activity
	if err := query.Order("review_time DESC").
		Offset((req.Page - 1) * req.PageSize).Limit(req.PageSize).
		Find(&activities).Error; err != nil {
		log.Error("查询审核历史失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	type historyView struct {
		model.Activity
		DisplayReviewTime string `json:"display_review_time"`
	}
	views := make([]historyView, 0, len(activities))
	for _, a := range activities {
		views = append(views, historyView{
			Activity:          a,
			DisplayReviewTime: tools.FormatCSTPtr(a.ReviewTime),
		})
	}

	response.Success(c, gin.H{
		"activities": views,
		"total":      total,
		"page":       req.Page,
		"page_size":  req.PageSize,
	})
}
