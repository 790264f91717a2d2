package comment

import (
	"campus-activity-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (cm *ModuleComment) InitRouter(r *gin.RouterGroup) {
	commentGroup := r.Group("/comment")
	{
		commentGroup.GET("/list/:id", ListComments)

		authed := commentGroup.Group("", middleware.Auth())
		{
			authed.POST("/add/:id", AddComment)
			authed.DELETE("/delete/:id", DeleteComment)
		}
	}
}
