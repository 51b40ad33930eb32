package models

import "time"

// 用户角色
const (
	RoleAdmin = 1
	RoleUser  = 2
)

// UserModel 用户模型
type UserModel struct {
	UserID        string     `gorm:"column:user_id;primaryKey;size:32" json:"user_id"`  // 用户ID
	UserName      string     `gorm:"size:50;uniqueIndex:uk_user_name" json:"user_name"` // 用户名
	Password      string     `gorm:"size:100" json:"-"`                                 // 密码
	Role          int8       `json:"role"`                                              // 角色 1 管理员 2 普通用户
	Status        string     `gorm:"type:char(1)" json:"status"`                        // 状态 1 启用 0 停用
	LastLoginDate *time.Time `json:"last_login_date"`                                   // 最后登录时间
	CreatedAt     time.Time  `json:"created_at"`                                        // 创建时间
	UpdatedAt     time.Time  `json:"updated_at"`                                        // 更新时间
}

func (UserModel) TableName() string {
	return "sys_user"
}
