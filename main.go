package main

import (
	"admin_server/internal/core"
	"admin_server/internal/flags"
	"admin_server/internal/global"
	"admin_server/internal/routers"
	"admin_server/internal/service/cron_service"
	"admin_server/internal/service/mq_service"
)

func main() {
	flags.Parse()                        // 解析命令行参数
	global.Config = core.ReadConfig()    // 读取配置文件
	core.SetLogDefault()                 // 设置默认日志配置
	global.Log = core.GetLogger()        // 获取日志实例
	core.InitIPDB()                      // 初始化IP地址数据库
	global.DB = core.GetDB()             // 获取数据库实例
	global.Redis = core.GetRedisClient() // 获取Redis实例，未配置时为nil
	global.Queue = core.InitMQ()         // 获取MQ通道，未启用时为nil
	flags.Run()                          // 运行命令行参数
	mq_service.Run()                     // 注册交换器
	cron_service.Run()                   // 启动定时任务
	routers.Run()                        // 启动路由
}
