package cron_service

// File: admin_server/service/cron_service/clear_expired_online.go
// Description: 定时清理token已过期的在线用户会话

import (
	"admin_server/internal/global"
	"admin_server/internal/service/online_service"
)

// ClearExpiredOnline 删除已过期的在线会话
func ClearExpiredOnline() {
	count, err := online_service.ClearExpired()
	if err != nil {
		global.Log.Errorf("清理过期在线会话失败 %s", err)
		return
	}
	if count > 0 {
		global.Log.Infof("清理过期在线会话 %d 个", count)
	}
}
