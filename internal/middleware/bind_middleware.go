package middleware

// File: admin_server/middleware/bind_middleware.go
// Description: 参数绑定中间件模块，提供JSON和Query参数的通用绑定及获取功能

import (
	"admin_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// BindJsonMiddleware JSON参数绑定中间件，将请求体JSON数据绑定到指定类型结构体
func BindJsonMiddleware[T any](c *gin.Context) {
	var cr T
	if err := c.ShouldBindJSON(&cr); err != nil {
		response.FailWithError(err, c)
		c.Abort()
		return
	}
	c.Set("request", cr)
}

// BindQueryMiddleware Query参数绑定中间件，将URL查询参数绑定到指定类型结构体
func BindQueryMiddleware[T any](c *gin.Context) {
	var cr T
	if err := c.ShouldBindQuery(&cr); err != nil {
		response.FailWithError(err, c)
		c.Abort()
		return
	}
	c.Set("request", cr)
}

// GetBind 从Gin上下文中获取已绑定的参数结构体
func GetBind[T any](c *gin.Context) (cr T) {
	return c.MustGet("request").(T)
}
