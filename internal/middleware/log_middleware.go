package middleware

// File: admin_server/middleware/log_middleware.go
// Description: 日志上下文中间件模块，为每个请求生成唯一日志ID并注入带标识的日志实例

import (
	"admin_server/internal/global"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LogMiddleware 为每个请求生成唯一LogID，并将携带LogID和客户端IP的日志实例存入上下文
func LogMiddleware(c *gin.Context) {
	logger := global.Log.WithFields(logrus.Fields{
		"logID":    uuid.New().String(),
		"clientIP": c.ClientIP(),
	})
	c.Set("log", logger)
	c.Next()
}

// GetLog 从Gin上下文中获取带请求唯一标识的日志实例，未经过LogMiddleware时返回全局日志
func GetLog(c *gin.Context) *logrus.Entry {
	if v, ok := c.Get("log"); ok {
		if log, ok := v.(*logrus.Entry); ok {
			return log
		}
	}
	return global.Log
}
