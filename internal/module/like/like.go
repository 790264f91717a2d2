package like

import (
	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ToggleLike 点赞/取消点赞开关
// 已点赞则取消，未点赞则新增，活动点赞计数同步增减
func ToggleLike(c *gin.Context) {
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
	if !activity.Approved {
		response.Fail(c, response.ErrForbidden.WithTips("活动尚未审核通过，无法点赞"))
		return
	}

	liked := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND activity_id = ?", payload.UserID, activity.ID).
			Delete(&model.Like{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			// 取消点赞
			return tx.Model(&model.Activity{}).
				Where("id = ? AND likes_count > 0", activity.ID).
				Update("likes_count", gorm.Expr("likes_count - 1")).Error
		}

		if err := tx.Create(&model.Like{
			UserID:     payload.UserID,
			ActivityID: activity.ID,
		}).Error; err != nil {
			return err
		}
		liked = true
		return tx.Model(&model.Activity{}).
			Where("id = ?", activity.ID).
			Update("likes_count", gorm.Expr("likes_count + 1")).Error
	})
	if err != nil {
		// 并发下两个请求同时走到新增分支，后者撞唯一索引，等价于重复点击
		if database.IsDuplicateKey(err) {
			response.Fail(c, response.ErrAlreadyExists.WithTips("请勿重复点赞"))
			return
		}
		log.Error("点赞操作失败", "error", err, "activity_id", activity.ID, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("点赞状态已切换", "activity_id", activity.ID, "user_id", payload.UserID, "liked", liked)
	response.Success(c, gin.H{
		"liked": liked,
	})
}
