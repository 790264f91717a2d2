package model

import "time"

// Like 点赞记录，一个用户对一个活动只能点赞一次（存储层唯一约束）
type Like struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index:idx_user_activity_like,unique" json:"user_id"`
	ActivityID uint      `gorm:"not null;index:idx_user_activity_like,unique" json:"activity_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
