package middleware

// File: admin_server/middleware/auth_middleware.go
// Description: 中间件模块，提供JWT认证、会话吊销校验和角色权限校验中间件

import (
	"admin_server/internal/global"
	"admin_server/internal/models"
	"admin_server/internal/service/online_service"
	"admin_server/internal/utils/jwts"
	"admin_server/internal/utils/response"
	"slices"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware JWT认证中间件，白名单路径直接放行
func AuthMiddleware(c *gin.Context) {
	if slices.Contains(global.Config.WhiteList, c.Request.URL.Path) {
		c.Next()
		return
	}
	claims, err := jwts.ParseToken(c.GetHeader("token"))
	if err != nil {
		response.FailWithAuth("认证失败", c)
		c.Abort()
		return
	}
	// 强制下线或主动注销的token不再可用
	if online_service.IsRevoked(claims.Id) {
		response.FailWithAuth("登录已失效，请重新登录", c)
		c.Abort()
		return
	}
	c.Set("claims", claims)
	c.Next()
}

// GetAuth 获取当前请求的认证信息
func GetAuth(c *gin.Context) *jwts.Claims {
	return c.MustGet("claims").(*jwts.Claims)
}

// AdminMiddleware 管理员角色校验，需挂在AuthMiddleware之后
func AdminMiddleware(c *gin.Context) {
	v, ok := c.Get("claims")
	if !ok {
		response.FailWithAuth("认证失败", c)
		c.Abort()
		return
	}
	if v.(*jwts.Claims).Role != models.RoleAdmin {
		response.FailWithMsg("权限错误", c)
		c.Abort()
		return
	}
	c.Next()
}
