package models

import "time"

// UserOnlineModel 在线用户会话模型
type UserOnlineModel struct {
	ID            string    `gorm:"column:id;primaryKey;size:32" json:"id"`            // 会话ID
	UID           string    `gorm:"column:u_id;size:32" json:"u_id"`                   // 用户ID
	TokenID       string    `gorm:"size:32;index:idx_online_token_id" json:"token_id"` // token唯一标识
	TokenExp      int64     `gorm:"index:idx_online_token_exp" json:"token_exp"`       // token过期时间戳
	LoginTime     time.Time `json:"login_time"`                                        // 登录时间
	UserName      string    `gorm:"size:255" json:"user_name"`                         // 用户名
	DeptName      string    `gorm:"size:100" json:"dept_name"`                         // 部门名称
	Net           string    `gorm:"size:10" json:"net"`                                // 网络类型
	Ipaddr        string    `gorm:"size:120" json:"ipaddr"`                            // 登录ip
	LoginLocation string    `gorm:"size:255" json:"login_location"`                    // 登录地点
	Device        string    `gorm:"size:50" json:"device"`                             // 设备
	Browser       string    `gorm:"size:30" json:"browser"`                            // 浏览器
	Os            string    `gorm:"size:30" json:"os"`                                 // 操作系统
}

func (UserOnlineModel) TableName() string {
	return "sys_user_online"
}
