package user_api

// File: admin_server/api/user_api/list.go
// Description: 用户列表查询API接口

import (
	"admin_server/internal/middleware"
	"admin_server/internal/models"
	"admin_server/internal/service/common_service"
	"admin_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// ListRequest 用户列表查询参数，用户名模糊匹配
type ListRequest struct {
	models.PageInfo
	UserName string `form:"user_name" binding:"omitempty,max=50" label:"用户名"`
}

// ListView 用户列表，按创建时间倒序
func (UserApi) ListView(c *gin.Context) {
	cr := middleware.GetBind[ListRequest](c)

	list, count, err := common_service.QueryList(models.UserModel{}, common_service.QueryListRequest{
		Where:    common_service.NewConditions().Like([]string{"user_name"}, cr.UserName),
		PageInfo: cr.PageInfo,
		Sort:     "created_at desc, user_id asc",
	})
	if err != nil {
		response.FailWithMsg(err.Error(), c)
		return
	}
	response.OkWithPage(list, count, cr.GetPageNum(), cr.GetPageSize(), c)
}
