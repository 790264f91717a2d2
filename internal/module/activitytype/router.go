package activitytype

import (
	"campus-activity-system/internal/global/middleware"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (t *ModuleActivityType) InitRouter(r *gin.RouterGroup) {
	typeGroup := r.Group("/activity-type")
	{
		typeGroup.GET("/list", ListTypes)

		admin := typeGroup.Group("", middleware.Auth(model.RoleAdmin))
		{
			admin.POST("/create", CreateType)
			admin.PUT("/update/:id", UpdateType)
			admin.DELETE("/delete/:id", DeleteType)
		}
	}
}
