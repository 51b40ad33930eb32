package routers

// File: admin_server/routers/dict_type_routers.go
// Description: 字典类型模块路由

import (
	"admin_server/internal/api"
	"admin_server/internal/api/dict_type_api"
	"admin_server/internal/middleware"

	"github.com/gin-gonic/gin"
)

// DictTypeRouters 注册字典类型相关路由
func DictTypeRouters(r *gin.RouterGroup) {
	app := api.App.DictTypeApi
	r.GET("dict_type", middleware.BindQueryMiddleware[dict_type_api.ListRequest], app.ListView)
	r.POST("dict_type", middleware.BindJsonMiddleware[dict_type_api.CreateRequest], app.CreateView)
	r.PUT("dict_type", middleware.BindJsonMiddleware[dict_type_api.UpdateRequest], app.UpdateView)
	r.DELETE("dict_type", middleware.BindJsonMiddleware[dict_type_api.RemoveRequest], app.RemoveView)
	r.GET("dict_type/detail", middleware.BindQueryMiddleware[dict_type_api.DetailRequest], app.DetailView)
	r.GET("dict_type/all", app.AllView)
}
