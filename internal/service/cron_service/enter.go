package cron_service

// File: admin_server/service/cron_service/enter.go
// Description: 定时任务服务模块，初始化基于上海时区的定时任务调度器并注册在线会话清理任务

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Run 启动定时任务调度器
func Run() *cron.Cron {
	timezone, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		timezone = time.Local
	}
	crontab := cron.New(cron.WithSeconds(), cron.WithLocation(timezone))

	// 每分钟第0秒清理过期会话
	if _, err := crontab.AddFunc("0 * * * * *", ClearExpiredOnline); err != nil {
		logrus.Fatalf("注册定时任务失败 %s", err)
	}

	crontab.Start()
	return crontab
}
