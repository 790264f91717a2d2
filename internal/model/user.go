package model

// 角色为封闭集合：单字段使管理员与审核员天然互斥
const (
	RoleUser     = 0 // 普通用户
	RoleReviewer = 1 // 审核员
	RoleAdmin    = 2 // 管理员
)

// ValidRole 判断角色值是否在封闭集合内
func ValidRole(role int) bool {
	return role == RoleUser || role == RoleReviewer || role == RoleAdmin
}

type User struct {
	Model
	Username   string `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email      string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	Password   string `gorm:"type:varchar(255);not null" json:"-"`
	Department string `gorm:"type:varchar(50)" json:"department"`
	Interests  string `gorm:"type:varchar(200)" json:"interests"`
	Role       int    `gorm:"default:0;not null" json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsReviewer() bool {
	return u.Role == RoleReviewer
}
