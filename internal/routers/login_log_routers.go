package routers

// File: admin_server/routers/login_log_routers.go
// Description: 登录日志模块路由

import (
	"admin_server/internal/api"
	"admin_server/internal/api/login_log_api"
	"admin_server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// LoginLogRouters 注册登录日志相关路由
func LoginLogRouters(r *gin.RouterGroup) {
	app := api.App.LoginLogApi
	r.GET("login_log", middleware.BindQueryMiddleware[login_log_api.ListRequest], app.ListView)
	r.DELETE("login_log", middleware.AdminMiddleware, middleware.BindJsonMiddleware[login_log_api.RemoveRequest], app.RemoveView)
	r.DELETE("login_log/clean", middleware.AdminMiddleware, app.CleanView)
}
