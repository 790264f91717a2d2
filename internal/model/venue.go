package model

type Venue struct {
	Model
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"` // 场地名称
	Address     string `gorm:"type:varchar(200);not null" json:"address"`          // 地址
	Capacity    int    `gorm:"not null" json:"capacity"`                           // 容量
	Description string `gorm:"type:text" json:"description"`                       // 描述
}
