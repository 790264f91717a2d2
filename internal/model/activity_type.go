package model

type ActivityType struct {
	Model
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"` // 类型名称
	Description string `gorm:"type:varchar(200)" json:"description"`              // 类型描述
}
