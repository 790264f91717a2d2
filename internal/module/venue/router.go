package venue

import (
	"campus-activity-system/internal/global/middleware"
	"campus-activity-system/internal/model"

	"github.com/gin-gonic/gin"
)

func (v *ModuleVenue) InitRouter(r *gin.RouterGroup) {
	venueGroup := r.Group("/venue")
	{
		venueGroup.GET("/list", ListVenues)

		admin := venueGroup.Group("", middleware.Auth(model.RoleAdmin))
		{
			admin.POST("/create", CreateVenue)
			admin.PUT("/update/:id", UpdateVenue)
			admin.DELETE("/delete/:id", DeleteVenue)
		}
	}
}
