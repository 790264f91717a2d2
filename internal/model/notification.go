package model

// Notification 审核结果通知，发给活动发起人
type Notification struct {
	Model
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	ActivityID uint   `gorm:"not null;index" json:"activity_id"`
	Message    string `gorm:"type:varchar(255);not null" json:"message"`
	Read       bool   `gorm:"default:false;not null" json:"read"`
}
