package review

import (
	"campus-activity-system/internal/global/middleware"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
)

// 审核区仅审核员可进，管理员不做审核
func (rv *ModuleReview) InitRouter(r *gin.RouterGroup) {
	reviewGroup := r.Group("/review", middleware.Auth(model.RoleReviewer))
	{
		reviewGroup.GET("/pending", ListPending)
		reviewGroup.POST("/decide/:id", DecideActivity)
		reviewGroup.GET("/history", ReviewHistory)
	}
}
