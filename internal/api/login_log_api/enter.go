package login_log_api

// File: admin_server/api/login_log_api/enter.go
// Description: 登录日志API接口，提供登录日志分页查询、批量删除与清空

import (
	"admin_server/internal/middleware"
	"admin_server/internal/models"
	"admin_server/internal/service/common_service"
	"admin_server/internal/utils/response"
	"fmt"

	"github.com/gin-gonic/gin"
)

// LoginLogApi 登录日志API处理器结构体
type LoginLogApi struct{}

// ListRequest 登录日志列表查询参数
type ListRequest struct {
	models.PageInfo
	models.TimeRange
	LoginName string `form:"login_name" binding:"omitempty,max=50" label:"登录账号"`
	Ipaddr    string `form:"ipaddr" binding:"omitempty,max=50" label:"登录IP"`
	Status    string `form:"status" binding:"omitempty,oneof=0 1" label:"登录状态"`
}

// ListView 登录日志分页查询，时间范围作用于登录时间
func (LoginLogApi) ListView(c *gin.Context) {
	cr := middleware.GetBind[ListRequest](c)

	list, count, err := common_service.QueryList(models.LoginLogModel{}, common_service.QueryListRequest{
		Where: common_service.NewConditions().
			Eq("login_name", cr.LoginName).
			Eq("ipaddr", cr.Ipaddr).
			Eq("status", cr.Status).
			InRange("login_time", cr.TimeRange),
		PageInfo: cr.PageInfo,
	})
	if err != nil {
		middleware.GetLog(c).Errorf("查询登录日志失败 %s", err)
		response.FailWithMsg(err.Error(), c)
		return
	}
	response.OkWithPage(list, count, cr.GetPageNum(), cr.GetPageSize(), c)
}

// RemoveRequest 批量删除登录日志参数
type RemoveRequest struct {
	InfoIDs []string `json:"info_ids" binding:"required,min=1,dive,required,max=32" label:"日志ID列表"`
}

// RemoveView 按ID批量删除登录日志
func (LoginLogApi) RemoveView(c *gin.Context) {
	cr := middleware.GetBind[RemoveRequest](c)
	log := middleware.GetLog(c)

	count, err := common_service.Remove(models.LoginLogModel{}, common_service.RemoveRequest{
		IDList: cr.InfoIDs,
		Log:    log,
		Msg:    "登录日志",
	})
	if err != nil {
		response.FailWithMsg(err.Error(), c)
		return
	}
	if count == 0 {
		response.FailWithMsg("你要删除的登录日志不存在", c)
		return
	}
	response.OkWithMsg(fmt.Sprintf("成功删除%d条数据", count), c)
}

// CleanView 清空登录日志
func (LoginLogApi) CleanView(c *gin.Context) {
	count, err := common_service.Remove(models.LoginLogModel{}, common_service.RemoveRequest{
		All: true,
		Log: middleware.GetLog(c),
		Msg: "登录日志",
	})
	if err != nil {
		response.FailWithMsg(err.Error(), c)
		return
	}
	response.OkWithMsg(fmt.Sprintf("成功清空%d条数据", count), c)
}
