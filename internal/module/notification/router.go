package notification

import (
	"campus-activity-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (n *ModuleNotification) InitRouter(r *gin.RouterGroup) {
	notificationGroup := r.Group("/notification", middleware.Auth())
	{
		notificationGroup.GET("/list", ListNotifications)
		notificationGroup.POST("/read/:id", MarkRead)
		notificationGroup.POST("/read-all", MarkAllRead)
	}
}
