package activity

import (
	"campus-activity-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (a *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	activityGroup := r.Group("/activity")

	// 公开端点：匿名可浏览，带令牌则标记已参加/已点赞
	activityGroup.Use(middleware.OptionalAuth())
	{
		activityGroup.GET("/list", ListActivities)
		activityGroup.GET("/get/:id", GetActivity)
	}

	authed := activityGroup.Group("")
	authed.Use(middleware.Auth())
	{
		authed.POST("/create", CreateActivity)
		authed.PUT("/update/:id", UpdateActivity)
		authed.DELETE("/delete/:id", DeleteActivity)
		authed.GET("/mine", MyActivities)
		authed.GET("/export/:id", ExportActivity)
		authed.POST("/poster", UploadPoster)
		authed.POST("/poster/presign", PresignPoster)
	}
}
