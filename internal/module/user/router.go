package user

import (
	"campus-activity-system/internal/global/middleware"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	userGroup := r.Group("/user")

	// 注册与登录无需鉴权
	userGroup.POST("/register", Register)
	userGroup.POST("/login", Login)

	authed := userGroup.Group("")
	authed.Use(middleware.Auth())
	{
		authed.GET("/profile", Profile)
		authed.PUT("/profile", UpdateProfile)
	}

	// 用户管理仅限管理员
	adminGroup := userGroup.Group("")
	adminGroup.Use(middleware.Auth(model.RoleAdmin))
	{
		adminGroup.GET("/list", ListUsers)
		adminGroup.PUT("/role/:id", UpdateUserRole)
	}
}
