package user

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

// RegisterReq 定义注册请求的结构体
type RegisterReq struct {
	Username   string `json:"username" binding:"required,min=4,max=20"` // 用户名
	Email      string `json:"email" binding:"required,email"`           // 邮箱
	Password   string `json:"password" binding:"required,min=6"`        // 密码
	Department string `json:"department" binding:"required"`            // 院系
	Interests  string `json:"interests"`                                // 兴趣标签，可选
}

// Register 处理用户注册请求
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定注册请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// 用户名或邮箱占用检查
	var existing model.User
	err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error
	if err == nil {
		log.Warn("用户名或邮箱已存在", "username", req.Username)
		response.Fail(c, response.ErrAlreadyExists.WithTips("用户名或邮箱已存在"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("数据库查询失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	hash, err := tools.PasswordEncrypt(req.Password)
	if err != nil {
		log.Error("密码加密失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	user := model.User{
		Username:   req.Username,
		Email:      req.Email,
		Password:   hash,
		Department: req.Department,
		Interests:  req.Interests,
		Role:       model.RoleUser,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		// 并发注册同名时预检查会漏，唯一索引兜底
		if database.IsDuplicateKey(err) {
			response.Fail(c, response.ErrAlreadyExists.WithTips("用户名或邮箱已存在"))
			return
		}
		log.Error("创建用户失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户注册成功", "user_id", user.ID, "username", user.Username)
	response.Success(c, gin.H{
		"user_id": user.ID,
	})
}

// LoginReq 定义登录请求的结构体
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 处理用户登录请求，成功返回 JWT 令牌
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定登录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	err := database.DB.Where("username = ?", req.Username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Warn("用户不存在", "username", req.Username)
		response.Fail(c, response.ErrInvalidPassword)
		return
	case err != nil:
		log.Error("数据库查询失败", "error", err, "username", req.Username)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		log.Warn("密码错误", "username", req.Username)
		response.Fail(c, response.ErrInvalidPassword)
		return
	}

	log.Info("用户登录成功", "user_id", user.ID, "username", user.Username, "role", user.Role)

	response.Success(c, gin.H{
		"token": jwt.CreateToken(jwt.Payload{
			UserID:   user.ID,
			Username: user.Username,
			Role:     user.Role,
		}),
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

// Profile 返回当前用户资料与其发起、参与的活动
func Profile(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		log.Error("查询用户失败", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var organized []model.Activity
	if err := database.DB.Where("organizer_id = ?", user.ID).
		Order("start_time DESC").Find(&organized).Error; err != nil {
		log.Error("查询发起活动失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var participations []model.Participation
	if err := database.DB.Preload("Activity").Where("user_id = ?", user.ID).
		Order("registered_at DESC").Find(&participations).Error; err != nil {
		log.Error("查询参与记录失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"user":           user,
		"organized":      organized,
		"participations": participations,
	})
}

// UpdateProfileReq 使用指针类型支持部分更新
type UpdateProfileReq struct {
	Department *string `json:"department"`
	Interests  *string `json:"interests"`
}

// UpdateProfile 更新当前用户资料
func UpdateProfile(c *gin.Context) {
	payload, ok := jwt.GetUserPayload(c)
	if !ok {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("用户不存在"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Interests != nil {
		user.Interests = *req.Interests
	}

	if err := database.DB.Save(&user).Error; err != nil {
		log.Error("更新用户资料失败", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("用户资料已更新", "user_id", user.ID)
	response.Success(c)
}
