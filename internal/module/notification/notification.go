package notification

import (
	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListNotifications 当前用户的通知列表，未读在前、新的在前
func ListNotifications(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var notifications []model.Notification
	if err := database.DB.Where("user_id = ?", payload.UserID).
		Order("`read` ASC, created_at DESC").Find(&notifications).Error; err != nil {
		log.Error("查询通知失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var unread int64
	if err := database.DB.Model(&model.Notification{}).
		Where("user_id = ? AND `read` = ?", payload.UserID, false).
		Count(&unread).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	type notificationView struct {
		model.Notification
		DisplayTime string `json:"display_time"`
	}
	views := make([]notificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, notificationView{
			Notification: n,
			DisplayTime:  tools.FormatCST(n.CreatedAt),
		})
	}

	response.Success(c, gin.H{
		"notifications": views,
		"unread":        unread,
		"total":         len(views),
	})
}

// MarkRead 标记单条通知已读，只能操作自己的通知
func MarkRead(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	var notification model.Notification
	if err := database.DB.First(&notification, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("通知不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if notification.UserID != payload.UserID {
		response.Fail(c, response.ErrForbidden.WithTips("无权限操作该通知"))
		return
	}

	if err := database.DB.Model(&notification).Update("read", true).Error; err != nil {
		log.Error("标记通知已读失败", "error", err, "notification_id", notification.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c)
}

// MarkAllRead 一键已读
func MarkAllRead(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	if err := database.DB.Model(&model.Notification{}).
		Where("user_id = ? AND `read` = ?", payload.UserID, false).
		Update("read", true).Error; err != nil {
		log.Error("批量标记已读失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c)
}
