package comment

import (
	"strings"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AddCommentReq 发表评论请求
type AddCommentReq struct {
	Content string `json:"content" binding:"required,max=500"`
}

// AddComment 对活动发表评论，仅审核通过的活动可评论
func AddComment(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req AddCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("评论内容不能为空"))
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
	if !activity.Approved {
		response.Fail(c, response.ErrForbidden.WithTips("活动尚未审核通过，无法评论"))
		return
	}

	comment := model.Comment{
		Content:    strings.TrimSpace(req.Content),
		UserID:     payload.UserID,
		ActivityID: activity.ID,
	}
	if err := database.DB.Create(&comment).Error; err != nil {
		log.Error("发表评论失败", "error", err, "activity_id", activity.ID, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("评论发表成功", "comment_id", comment.ID, "activity_id", activity.ID)
	response.Success(c, gin.H{
		"comment_id": comment.ID,
	})
}

// ListComments 活动评论列表，最新在前
func ListComments(c *gin.Context) {
	id := c.Param("id")
	var activity model.Activity
	if err := database.DB.First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var comments []model.Comment
	if err := database.DB.Preload("User").
		Where("activity_id = ?", activity.ID).
		Order("created_at DESC").Find(&comments).Error; err != nil {
		log.Error("查询评论失败", "error", err, "activity_id", activity.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	type commentView struct {
		ID          uint   `json:"id"`
		Content     string `json:"content"`
		UserID      uint   `json:"user_id"`
		Username    string `json:"username"`
		DisplayTime string `json:"display_time"`
	}
	list := make([]commentView, 0, len(comments))
	for _, cm := range comments {
		list = append(list, commentView{
			ID:          cm.ID,
			Content:     cm.Content,
			UserID:      cm.UserID,
			Username:    cm.User.Username,
			DisplayTime: tools.FormatCST(cm.CreatedAt),
		})
	}

	response.Success(c, gin.H{
		"comments": list,
		"total":    len(list),
	})
}

// DeleteComment 删除评论，评论者本人、活动发起人或管理员
func DeleteComment(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	var comment model.Comment
	if err := database.DB.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("评论不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	allowed := comment.UserID == payload.UserID || payload.Role == model.RoleAdmin
	if !allowed {
		var activity model.Activity
		if err := database.DB.Select("organizer_id").
			First(&activity, "id = ?", comment.ActivityID).Error; err == nil {
			allowed = activity.OrganizerID == payload.UserID
		}
	}
	if !allowed {
		response.Fail(c, response.ErrForbidden.WithTips("无权限删除该评论"))
		return
	}

	if err := database.DB.Delete(&comment).Error; err != nil {
		log.Error("删除评论失败", "error", err, "comment_id", comment.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("评论已删除", "comment_id", comment.ID, "operator_id", payload.UserID)
	response.Success(c)
}
