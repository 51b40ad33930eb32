package routers

// File: admin_server/routers/user_routers.go
// Description: 用户模块路由

import (
	"admin_server/internal/api"
	"admin_server/internal/api/user_api"
	"admin_server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// UserRouters 注册用户相关路由
func UserRouters(r *gin.RouterGroup) {
	app := api.App.UserApi
	r.POST("login", middleware.BindJsonMiddleware[user_api.LoginRequest], app.LoginView)
	r.GET("users/info", app.UserInfoView)
	r.GET("users", middleware.BindQueryMiddleware[user_api.ListRequest], app.ListView)
	r.POST("users", middleware.AdminMiddleware, middleware.BindJsonMiddleware[user_api.CreateRequest], app.CreateView)
	r.DELETE("users", middleware.AdminMiddleware, middleware.BindJsonMiddleware[user_api.RemoveRequest], app.RemoveView)
}
