package user

import (
	"strconv"

	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/jwt"
	"campus-activity-system/internal/global/response"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListUsersReq 用户列表查询参数
type ListUsersReq struct {
	Search   string `form:"search"`    // 用户名模糊查询
	Page     int    `form:"page"`      // 页码，默认为1
	PageSize int    `form:"page_size"` // 每页大小，默认为20
}

// ListUsers 管理员查询用户列表
func ListUsers(c *gin.Context) {
	var req ListUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	query := database.DB.Model(&model.User{})
	if req.Search != "" {
		query = query.Where("username LIKE ?", "%"+req.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Error("获取用户总数失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var users []model.User
	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Find(&users).Error; err != nil {
		log.Error("获取用户列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"users":     users,
		"total":     total,
		"page":      req.Page,
		"page_size": req.PageSize,
	})
}

// UpdateUserRoleReq 角色修改请求
type UpdateUserRoleReq struct {
	Role int `json:"role" binding:"min=0,max=2"` // 0 用户 / 1 审核员 / 2 管理员
}

// UpdateUserRole 管理员修改用户角色
// 角色为封闭集合；不允许修改自己的角色
func UpdateUserRole(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips("用户ID无效"))
		return
	}

	var req UpdateUserRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if !model.ValidRole(req.Role) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("角色取值无效"))
		return
	}

	if uint(id) == payload.UserID {
		log.Warn("管理员尝试修改自己的角色", "user_id", payload.UserID)
		response.Fail(c, response.ErrForbidden.WithTips("无法修改您自己的权限"))
		return
	}

	var user model.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		log.Error("查询用户失败", "error", err, "user_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	user.Role = req.Role
	if err := database.DB.Save(&user).Error; err != nil {
		log.Error("更新用户角色失败", "error", err, "user_id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户角色已更新", "user_id", user.ID, "username", user.Username, "role", user.Role)
	response.Success(c)
}
