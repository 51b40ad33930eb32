package routers

// File: admin_server/routers/user_online_routers.go
// Description: 在线用户模块路由

import (
	"admin_server/internal/api"
	"admin_server/internal/api/user_online_api"
	"admin_server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// UserOnlineRouters 注册在线用户相关路由
func UserOnlineRouters(r *gin.RouterGroup) {
	app := api.App.UserOnlineApi
	r.GET("user_online", middleware.BindQueryMiddleware[user_online_api.ListRequest], app.ListView)
	r.DELETE("user_online", middleware.AdminMiddleware, middleware.BindJsonMiddleware[user_online_api.RemoveRequest], app.RemoveView)
	r.POST("logout", app.LogoutView)
}
