package models

import "time"

// 登录状态
const (
	LoginStatusFail    = "0"
	LoginStatusSuccess = "1"
)

// LoginLogModel 登录日志模型
type LoginLogModel struct {
	InfoID        string    `gorm:"column:info_id;primaryKey;size:32" json:"info_id"` // 日志ID
	LoginName     string    `gorm:"size:50" json:"login_name"`                        // 登录账号
	Net           string    `gorm:"size:10" json:"net"`                               // 网络类型 内网/外网
	Ipaddr        string    `gorm:"size:50;index:idx_login_log_ip" json:"ipaddr"`     // 登录ip
	LoginLocation string    `gorm:"size:255" json:"login_location"`                   // 登录地点
	Browser       string    `gorm:"size:50" json:"browser"`                           // 浏览器
	Os            string    `gorm:"size:50" json:"os"`                                // 操作系统
	Device        string    `gorm:"size:50" json:"device"`                            // 设备
	Status        string    `gorm:"type:char(1)" json:"status"`                       // 登录状态 1 成功 0 失败
	Msg           string    `gorm:"size:255" json:"msg"`                              // 提示消息
	LoginTime     time.Time `gorm:"index:idx_login_log_time" json:"login_time"`       // 登录时间
	Module        string    `gorm:"size:30" json:"module"`                            // 登录模块
}

func (LoginLogModel) TableName() string {
	return "sys_login_log"
}
