package activitytype

import (
	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListTypes 活动类型列表
func ListTypes(c *gin.Context) {
	var types []model.ActivityType
	if err := database.DB.Order("name ASC").Find(&types).Error; err != nil {
		log.Error("查询活动类型失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"activity_types": types,
		"total":          len(types),
	})
}

// TypeReq 活动类型创建/编辑请求
type TypeReq struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"max=200"`
}

// CreateType 新建活动类型，仅管理员
func CreateType(c *gin.Context) {
	var req TypeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	activityType := model.ActivityType{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := database.DB.Create(&activityType).Error; err != nil {
		if database.IsDuplicateKey(err) {
			response.Fail(c, response.ErrAlreadyExists.WithTips("活动类型名称已存在"))
			return
		}
		log.Error("创建活动类型失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动类型创建成功", "type_id", activityType.ID, "name", activityType.Name)
	response.Success(c, gin.H{
		"activity_type_id": activityType.ID,
	})
}

// UpdateType 编辑活动类型，仅管理员
func UpdateType(c *gin.Context) {
	id := c.Param("id")
	var activityType model.ActivityType
	if err := database.DB.First(&activityType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动类型不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var req TypeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	activityType.Name = req.Name
	activityType.Description = req.Description
	if err := database.DB.Save(&activityType).Error; err != nil {
		if database.IsDuplicateKey(err) {
			response.Fail(c, response.ErrAlreadyExists.WithTips("活动类型名称已存在"))
			return
		}
		log.Error("更新活动类型失败", "error", err, "type_id", activityType.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动类型更新成功", "type_id", activityType.ID, "name", activityType.Name)
	response.Success(c)
}

// DeleteType 删除活动类型，仍被活动引用时拒绝
func DeleteType(c *gin.Context) {
	id := c.Param("id")
	var activityType model.ActivityType
	if err := database.DB.First(&activityType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("活动类型不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var count int64
	if err := database.DB.Model(&model.Activity{}).
		Where("activity_type_id = ?", activityType.ID).Count(&count).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if count > 0 {
		log.Warn("活动类型仍被引用，拒绝删除", "type_id", activityType.ID, "referenced", count)
		response.Fail(c, response.ErrConflict.WithTips("该活动类型仍被活动使用，无法删除"))
		return
	}

	if err := database.DB.Delete(&activityType).Error; err != nil {
		log.Error("删除活动类型失败", "error", err, "type_id", activityType.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("活动类型已删除", "type_id", activityType.ID, "name", activityType.Name)
	response.Success(c)
}
