package mq_service

// File: admin_server/service/mq_service/send_login_msg.go
// Description: 登录事件消息，每次登录尝试后发布到登录交换器

import "admin_server/internal/global"

// LoginMessage 登录事件消息结构体
type LoginMessage struct {
	InfoID    string `json:"info_id"`    // 登录日志ID
	LoginName string `json:"login_name"` // 登录账号
	Ipaddr    string `json:"ipaddr"`     // 登录IP
	Location  string `json:"location"`   // 登录地点
	Status    string `json:"status"`     // 登录状态 1 成功 0 失败
	Msg       string `json:"msg"`        // 提示消息
	LoginTime int64  `json:"login_time"` // 登录时间戳
}

// SendLoginMsg 发布登录事件，未启用MQ时不发送
func SendLoginMsg(msg LoginMessage) {
	if global.Queue == nil {
		return
	}
	_ = sendExchangeMessage(global.Config.MQ.LoginExchangeName, msg)
}
