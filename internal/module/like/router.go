package like

import (
	"campus-activity-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (l *ModuleLike) InitRouter(r *gin.RouterGroup) {
	likeGroup := r.Group("/like", middleware.Auth())
	{
		likeGroup.POST("/toggle/:id", ToggleLike)
	}
}
