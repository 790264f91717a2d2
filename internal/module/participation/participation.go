package participation

import (
	"time"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"
	"campus-activity-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// JoinActivity 报名活动
// 名额校验与计数自增在同一条条件 UPDATE 里完成，组合唯一索引挡住并发重复报名
func JoinActivity(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
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
	if activity.Status != model.ActivityStatusActive || !activity.Approved {
		response.Fail(c, response.ErrForbidden.WithTips("该活动尚未开放报名"))
		return
	}
	if !activity.Joinable(now) {
		response.Fail(c, response.ErrForbidden.WithTips("活动已开始或已结束，无法报名"))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Activity{}).
			Where("id = ? AND current_participants < max_participants", activity.ID).
			Update("current_participants", gorm.Expr("current_participants + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return response.ErrConflict.WithTips("活动名额已满")
		}
		return tx.Create(&model.Participation{
			UserID:     payload.UserID,
			ActivityID: activity.ID,
			Status:     model.ParticipationStatusRegistered,
		}).Error
	})
	if err != nil {
		var e *response.Error
		if errors.As(err, &e) {
			response.Fail(c, e)
			return
		}
		// 唯一索引冲突说明已经报过名
		if database.IsDuplicateKey(err) {
			response.Fail(c, response.ErrAlreadyExists.WithTips("您已报名该活动"))
			return
		}
		log.Error("报名失败", "error", err, "activity_id", activity.ID, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("报名成功", "activity_id", activity.ID, "user_id", payload.UserID)
	response.Success(c)
}

// QuitActivity 退出活动，计数同步回减且不为负
func QuitActivity(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
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

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND activity_id = ?", payload.UserID, activity.ID).
			Delete(&model.Participation{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return response.ErrNotFound.WithTips("您未报名该活动")
		}
		return tx.Model(&model.Activity{}).
			Where("id = ? AND current_participants > 0", activity.ID).
			Update("current_participants", gorm.Expr("current_participants - 1")).Error
	})
	if err != nil {
		var e *response.Error
		if errors.As(err, &e) {
			response.Fail(c, e)
			return
		}
		log.Error("退出活动失败", "error", err, "activity_id", activity.ID, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("退出活动成功", "activity_id", activity.ID, "user_id", payload.UserID)
	response.Success(c)
}

// ListParticipants 查看活动报名名单，仅发起人或管理员
func ListParticipants(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

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

	if activity.OrganizerID != payload.UserID && payload.Role != model.RoleAdmin {
		response.Fail(c, response.ErrForbidden.WithTips("无权限查看报名名单"))
		return
	}

	var participations []model.Participation
	if err := database.DB.Preload("User").
		Where("activity_id = ?", activity.ID).
		Order("registered_at ASC").Find(&participations).Error; err != nil {
		log.Error("查询报名名单失败", "error", err, "activity_id", activity.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	type participantView struct {
		UserID       uint   `json:"user_id"`
		Username     string `json:"username"`
		Email        string `json:"email"`
		Department   string `json:"department"`
		RegisteredAt string `json:"registered_at"`
	}
	list := make([]participantView, 0, len(participations))
	for _, p := range participations {
		list = append(list, participantView{
			UserID:       p.UserID,
			Username:     p.User.Username,
			Email:        p.User.Email,
			Department:   p.User.Department,
			RegisteredAt: tools.FormatCST(p.RegisteredAt),
		})
	}

	response.Success(c, gin.H{
		"participants": list,
		"total":        len(list),
	})
}
