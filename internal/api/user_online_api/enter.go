package user_online_api

// File: admin_server/api/user_online_api/enter.go
// Description: 在线用户API接口，提供在线会话分页查询、强制下线与注销

import (
	"admin_server/internal/middleware"
	"admin_server/internal/models"
	"admin_server/internal/service/common_service"
	"admin_server/internal/service/online_service"
	"admin_server/internal/utils/response"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// UserOnlineApi 在线用户API处理器结构体
type UserOnlineApi struct{}

// ListRequest 在线用户列表查询参数
type ListRequest struct {
	models.PageInfo
	models.TimeRange
	Ipaddr   string `form:"ipaddr" binding:"omitempty,max=120" label:"登录IP"`
	UserName string `form:"user_name" binding:"omitempty,max=255" label:"用户名"`
}

// ListView 在线用户分页查询，时间范围作用于登录时间
func (UserOnlineApi) ListView(c *gin.Context) {
	cr := middleware.GetBind[ListRequest](c)

	list, count, err := common_service.QueryList(models.UserOnlineModel{}, common_service.QueryListRequest{
		Where: common_service.NewConditions().
			Eq("ipaddr", cr.Ipaddr).
			Eq("user_name", cr.UserName).
			InRange("login_time", cr.TimeRange),
		PageInfo: cr.PageInfo,
	})
	if err != nil {
		middleware.GetLog(c).Errorf("查询在线用户失败 %s", err)
		response.FailWithMsg(err.Error(), c)
		return
	}
	response.OkWithPage(list, count, cr.GetPageNum(), cr.GetPageSize(), c)
}

// RemoveRequest 强制下线参数
type RemoveRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required,max=32" label:"会话ID列表"`
}

// RemoveView 强制下线，会话token立即失效
func (UserOnlineApi) RemoveView(c *gin.Context) {
	cr := middleware.GetBind[RemoveRequest](c)

	count, err := online_service.Remove(cr.IDs, middleware.GetLog(c))
	if err != nil {
		response.FailWithMsg(err.Error(), c)
		return
	}
	if count == 0 {
		response.FailWithMsg("你要删除的在线用户不存在", c)
		return
	}
	response.OkWithMsg(fmt.Sprintf("成功删除%d条数据", count), c)
}

// LogoutView 注销当前登录会话
func (UserOnlineApi) LogoutView(c *gin.Context) {
	claims := middleware.GetAuth(c)

	err := online_service.Logout(claims, middleware.GetLog(c))
	if errors.Is(err, online_service.ErrSessionNotFound) {
		response.FailWithMsg("登录会话不存在", c)
		return
	}
	if err != nil {
		response.FailWithMsg(err.Error(), c)
		return
	}
	response.OkWithMsg("注销成功", c)
}
