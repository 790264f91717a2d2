package participation

import (
	"campus-activity-system/internal/global/middleware"

	"github.com/gin-gonic/gin"
)

func (p *ModuleParticipation) InitRouter(r *gin.RouterGroup) {
	participationGroup := r.Group("/participation", middleware.Auth())
	{
		participationGroup.POST("/join/:id", JoinActivity)
		participationGroup.POST("/quit/:id", QuitActivity)
		participationGroup.GET("/list/:id", ListParticipants)
	}
}
