package server_api

// File: admin_server/api/server_api/enter.go
// Description: 服务器信息接口，返回CPU、内存、磁盘及主机信息快照

import (
	"admin_server/internal/middleware"
	"admin_server/internal/utils/info"
	"admin_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// ServerApi 服务器信息接口处理结构体
type ServerApi struct{}

// ServerInfoView 查询服务器资源使用情况
func (ServerApi) ServerInfoView(c *gin.Context) {
	data, err := info.GetServerInfo("/")
	if err != nil {
		middleware.GetLog(c).Errorf("获取服务器信息失败 %s", err)
		response.FailWithMsg("获取服务器信息失败", c)
		return
	}
	response.OkWithResult(data, c)
}
