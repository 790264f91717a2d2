package module

import (
	"campus-activity-system/internal/module/activity"
	"campus-activity-system/internal/module/activitytype"
	"campus-activity-system/internal/module/comment"
	"campus-activity-system/internal/module/like"
	"campus-activity-system/internal/module/notification"
	"campus-activity-system/internal/module/participation"
	"campus-activity-system/internal/module/ping"
	"campus-activity-system/internal/module/recommend"
	"campus-activity-system/internal/module/review"
	"campus-activity-system/internal/module/user"
	"campus-activity-system/internal/module/venue"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&user.ModuleUser{},
		&activity.ModuleActivity{},
		&participation.ModuleParticipation{},
		&comment.ModuleComment{},
		&like.ModuleLike{},
		&review.ModuleReview{},
		&venue.ModuleVenue{},
		&activitytype.ModuleActivityType{},
		&notification.ModuleNotification{},
		&recommend.ModuleRecommend{},
	})
}
