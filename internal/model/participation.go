package model

import "time"

const ParticipationStatusRegistered = "registered"

// Participation 报名记录
// (user_id, activity_id) 组合唯一索引在存储层挡住并发重复报名
type Participation struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index:idx_user_activity,unique" json:"user_id"`
	ActivityID   uint      `gorm:"not null;index:idx_user_activity,unique" json:"activity_id"`
	Status       string    `gorm:"type:varchar(20);default:registered;not null" json:"status"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`

	User     User     `gorm:"foreignKey:UserID" json:"user"`
	Activity Activity `gorm:"foreignKey:ActivityID" json:"activity"`
}
