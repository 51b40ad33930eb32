package routers

// File: admin_server/routers/server_routers.go
// Description: 服务器信息路由

import (
	"admin_server/internal/api"

	"github.com/gin-gonic/gin"
)

// ServerRouters 注册服务器信息路由
func ServerRouters(r *gin.RouterGroup) {
	app := api.App.ServerApi
	r.GET("server_info", app.ServerInfoView)
}
