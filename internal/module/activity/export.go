package activity

import (
	"fmt"
	"time"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// exportDelay 活动结束多久后发起人才能导出数据
const exportDelay = 7 * 24 * time.Hour

// ExportActivity 导出活动数据为 xlsx
// 发起人需等活动结束满一周，管理员不受限
func ExportActivity(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	id := c.Param("id")
	var activity model.Activity
	if err := database.DB.Preload("Venue").Preload("ActivityType").Preload("Organizer").
		First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动不存在"))
			return
		}
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	now := time.Now().UTC()
	switch {
	case payload.Role == model.RoleAdmin:
		// 管理员随时可导出
	case activity.OrganizerID != payload.UserID:
		response.Fail(c, response.ErrForbidden.WithTips("无权限导出该活动数据"))
		return
	case now.Sub(activity.EndTime) < exportDelay:
		response.Fail(c, response.ErrForbidden.WithTips("活动结束一周后才能导出数据"))
		return
	}

	var participations []model.Participation
	if err := database.DB.Preload("User").
		Where("activity_id = ?", activity.ID).
		Order("registered_at ASC").Find(&participations).Error; err != nil {
		log.Error("查询报名记录失败", "error", err, "activity_id", activity.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var comments []model.Comment
	if err := database.DB.Preload("User").
		Where("activity_id = ?", activity.ID).
		Order("created_at ASC").Find(&comments).Error; err != nil {
		log.Error("查询评论失败", "error", err, "activity_id", activity.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	venueName := ""
	if activity.Venue != nil {
		venueName = activity.Venue.Name
	}
	typeName := ""
	if activity.ActivityType != nil {
		typeName = activity.ActivityType.Name
	}

	f := excelize.NewFile()
	defer f.Close()

	infoRows := [][]any{
		{"活动标题", activity.Title},
		{"活动描述", activity.Description},
		{"发起人", activity.Organizer.Username},
		{"活动类型", typeName},
		{"场地", venueName},
		{"开始时间", tools.FormatCST(activity.StartTime)},
		{"结束时间", tools.FormatCST(activity.EndTime)},
		{"标签", activity.Tags},
		{"报名人数", fmt.Sprintf("%d / %d", activity.CurrentParticipants, activity.MaxParticipants)},
		{"点赞数", activity.LikesCount},
		{"评论数", len(comments)},
	}
	if err := tools.WriteSheetRows(f, "活动信息", infoRows); err != nil {
		log.Error("写入活动信息失败", "error", err, "activity_id", activity.ID)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	participantRows := [][]any{{"序号", "用户名", "邮箱", "院系", "报名时间"}}
	for i, p := range participations {
		participantRows = append(participantRows, []any{
			i + 1, p.User.Username, p.User.Email, p.User.Department,
			tools.FormatCST(p.RegisteredAt),
		})
	}
	if err := tools.WriteSheetRows(f, "报名名单", participantRows); err != nil {
		log.Error("写入报名名单失败", "error", err, "activity_id", activity.ID)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	commentRows := [][]any{{"序号", "用户名", "评论内容", "评论时间"}}
	for i, cm := range comments {
		commentRows = append(commentRows, []any{
			i + 1, cm.User.Username, cm.Content, tools.FormatCST(cm.CreatedAt),
		})
	}
	if err := tools.WriteSheetRows(f, "评论记录", commentRows); err != nil {
		log.Error("写入评论记录失败", "error", err, "activity_id", activity.ID)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	// 默认创建的 Sheet1 用不上
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s-活动数据.xlsx", activity.Title)
	if err := tools.SendExcel(c, f, filename); err != nil {
		log.Error("导出活动数据失败", "error", err, "activity_id", activity.ID)
		return
	}

	log.Info("活动数据导出成功", "activity_id", activity.ID, "user_id", payload.UserID)
}
