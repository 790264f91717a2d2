package venue

import (
	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListVenues 场地列表，创建活动时选择场地使用
func ListVenues(c *gin.Context) {
	var venues []model.Venue
	if err := database.DB.Order("name ASC").Find(&venues).Error; err != nil {
		log.Error("查询场地列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"venues": venues,
		"total":  len(venues),
	})
}

// VenueReq 场地创建/编辑请求
type VenueReq struct {
	Name        string `json:"name" binding:"required,max=100"`
	Address     string `json:"address" binding:"required,max=200"`
	Capacity    int    `json:"capacity" binding:"required"`
	Description string `json:"description"`
}

// CreateVenue 新建场地，仅管理员
func CreateVenue(c *gin.Context) {
	var req VenueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.Capacity <= 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("场地容量必须大于0"))
		return
	}

	venue := model.Venue{
		Name:        req.Name,
		Address:     req.Address,
		Capacity:    req.Capacity,
		Description: req.Description,
	}
	if err := database.DB.Create(&venue).Error; err != nil {
		if database.IsDuplicateKey(err) {
			response.Fail(c, response.ErrAlreadyExists.WithTips("场地名称已存在"))
			return
		}
		log.Error("创建场地失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("场地创建成功", "venue_id", venue.ID, "name", venue.Name)
	response.Success(c, gin.H{
		"venue_id": venue.ID,
	})
}

// UpdateVenue 编辑场地，仅管理员
// 缩小容量不影响已过审的活动
func UpdateVenue(c *gin.Context) {
	id := c.Param("id")
	var venue model.Venue
	if err := database.DB.First(&venue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("场地不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var req VenueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.Capacity <= 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("场地容量必须大于0"))
		return
	}

	venue.Name = req.Name
	venue.Address = req.Address
	venue.Capacity = req.Capacity
	venue.Description = req.Description
	if err := database.DB.Save(&venue).Error; err != nil {
		if database.IsDuplicateKey(err) {
			response.Fail(c, response.ErrAlreadyExists.WithTips("场地名称已存在"))
			return
		}
		log.Error("更新场地失败", "error", err, "venue_id", venue.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("场地更新成功", "venue_id", venue.ID, "name", venue.Name)
	response.Success(c)
}

// DeleteVenue 删除场地，仍被活动引用时拒绝
func DeleteVenue(c *gin.Context) {
	id := c.Param("id")
	var venue model.Venue
	if err := database.DB.First(&venue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("场地不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var count int64
	if err := database.DB.Model(&model.Activity{}).
		Where("venue_id = ?", venue.ID).Count(&count).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if count > 0 {
		log.Warn("场地仍被活动引用，拒绝删除", "venue_id", venue.ID, "referenced", count)
		response.Fail(c, response.ErrConflict.WithTips("该场地仍被活动使用，无法删除"))
		return
	}

	if err := database.DB.Delete(&venue).Error; err != nil {
		log.Error("删除场地失败", "error", err, "venue_id", venue.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("场地已删除", "venue_id", venue.ID, "name", venue.Name)
	response.Success(c)
}
