package model

import "time"

// 持久化状态：由审核流程推进，与时间无关
const (
	ActivityStatusPending  = "pending"
	ActivityStatusActive   = "active"
	ActivityStatusRejected = "rejected"
)

// 审核状态
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// 派生状态：由当前时间对照活动起止时间计算，每次读取重新求值，不落库
const (
	CurrentStatusRegistering = "registering" // 报名中
	CurrentStatusOngoing     = "ongoing"     // 进行中
	CurrentStatusEnded       = "ended"       // 已结束
)

type Activity struct {
	Model
	Title               string     `gorm:"type:varchar(100);not null" json:"title"`        // 活动标题
	Description         string     `gorm:"type:text" json:"description"`                   // 活动描述
	StartTime           time.Time  `gorm:"not null;index" json:"start_time"`               // 开始时间（UTC）
	EndTime             time.Time  `gorm:"not null;index" json:"end_time"`                 // 结束时间（UTC）
	OrganizerID         uint       `gorm:"not null;index" json:"organizer_id"`             // 发起人
	ReviewerID          *uint      `gorm:"index" json:"reviewer_id"`                       // 审核人，未审核时为空
	VenueID             *uint      `gorm:"index" json:"venue_id"`                          // 场地，可选
	ActivityTypeID      *uint      `gorm:"index" json:"activity_type_id"`                  // 活动类型，可选
	MaxParticipants     int        `gorm:"not null" json:"max_participants"`               // 最大参与人数
	CurrentParticipants int        `gorm:"default:0;not null" json:"current_participants"` // 当前参与人数
	Tags                string     `gorm:"type:varchar(200)" json:"tags"`                  // 逗号分隔标签
	Status              string     `gorm:"type:varchar(20);default:pending;not null" json:"status"`
	ReviewStatus        string     `gorm:"type:varchar(20);default:pending;not null" json:"review_status"`
	ReviewComment       string     `gorm:"type:text" json:"review_comment"`
	ReviewTime          *time.Time `json:"review_time"`
	Approved            bool       `gorm:"default:false;not null" json:"approved"`
	PosterURL           string     `gorm:"type:varchar(200)" json:"poster_url"`
	LikesCount          int        `gorm:"default:0;not null" json:"likes_count"`

	Organizer    User          `gorm:"foreignKey:OrganizerID" json:"organizer"`
	Venue        *Venue        `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	ActivityType *ActivityType `gorm:"foreignKey:ActivityTypeID" json:"activity_type,omitempty"`
}

// CurrentStatus 按当前时刻派生活动状态
// now < start 报名中；start <= now <= end 进行中；now > end 已结束
func (a *Activity) CurrentStatus(now time.Time) string {
	switch {
	case now.Before(a.StartTime):
		return CurrentStatusRegistering
	case now.After(a.EndTime):
		return CurrentStatusEnded
	default:
		return CurrentStatusOngoing
	}
}

// Joinable 仅报名中的活动可参加
func (a *Activity) Joinable(now time.Time) bool {
	return a.CurrentStatus(now) == CurrentStatusRegistering
}
