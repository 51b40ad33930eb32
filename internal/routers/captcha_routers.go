package routers

// File: admin_server/routers/captcha_routers.go
// Description: 验证码模块路由

import (
	"admin_server/internal/api"

	"github.com/gin-gonic/gin"
)

// CaptchaRouters 注册验证码相关路由
func CaptchaRouters(r *gin.RouterGroup) {
	app := api.App.CaptchaApi
	r.GET("captcha", app.GenerateView)
}
