package recommend

import (
	"campus-activity-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (rc *ModuleRecommend) InitRouter(r *gin.RouterGroup) {
	recommendGroup := r.Group("/recommend")
	{
		recommendGroup.GET("/hot", HotBoard)
		recommendGroup.GET("/personal", middleware.OptionalAuth(), Personalized)
	}
}
