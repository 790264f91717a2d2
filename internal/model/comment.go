package model

type Comment struct {
	Model
	Content    string `gorm:"type:text;not null" json:"content"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	ActivityID uint   `gorm:"not null;index" json:"activity_id"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}
