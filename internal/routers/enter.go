package routers

// File: admin_server/routers/enter.go
// Description: 路由模块，负责初始化Gin引擎、注册API路由并启动HTTP服务

import (
	"admin_server/internal/global"
	"admin_server/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewEngine 创建Gin引擎并注册全部路由
func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware)
	r.GET("metrics", gin.WrapH(promhttp.Handler()))

	g := r.Group("admin_server")
	g.Use(middleware.LogMiddleware, middleware.AuthMiddleware) // 白名单外的接口必须登录

	UserRouters(g)
	CaptchaRouters(g)
	LoginLogRouters(g)
	UserOnlineRouters(g)
	DictTypeRouters(g)
	ServerRouters(g)
	return r
}

// Run 初始化路由引擎并启动HTTP服务
func Run() {
	system := global.Config.System
	gin.SetMode(system.Mode)

	r := NewEngine()
	logrus.Infof("web addr run %s", system.WebAddr)
	if err := r.Run(system.WebAddr); err != nil {
		logrus.Fatalf("web服务启动失败 %s", err)
	}
}
