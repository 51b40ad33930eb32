package user_api

// File: admin_server/api/user_api/remove.go
// Description: 用户批量删除API接口

import (
	"admin_server/internal/middleware"
	"admin_server/internal/models"
	"admin_server/internal/service/common_service"
	"admin_server/internal/service/online_service"
	"admin_server/internal/utils/response"
	"fmt"
	"slices"

	"github.com/gin-gonic/gin"
)

// RemoveRequest 批量删除用户的请求参数结构体
type RemoveRequest struct {
	UserIDs []string `json:"user_ids" binding:"required,min=1,dive,required,max=32" label:"用户ID列表"`
}

// RemoveView 批量删除用户，不能删除当前登录用户
func (UserApi) RemoveView(c *gin.Context) {
	cr := middleware.GetBind[RemoveRequest](c)
	log := middleware.GetLog(c)

	if slices.Contains(cr.UserIDs, middleware.GetAuth(c).UserID) {
		response.FailWithMsg("不能删除当前登录用户", c)
		return
	}

	count, err := common_service.Remove(models.UserModel{}, common_service.RemoveRequest{
		IDList: cr.UserIDs,
		Log:    log,
		Msg:    "用户",
	})
	if err != nil {
		response.FailWithMsg(err.Error(), c)
		return
	}
	if count == 0 {
		response.FailWithMsg("你要删除的用户不存在", c)
		return
	}
	if _, err = online_service.RemoveByUser(cr.UserIDs, log); err != nil {
		log.Errorf("结束被删除用户的会话失败 %s", err)
		response.FailWithMsg(err.Error(), c)
		return
	}
	response.OkWithMsg(fmt.Sprintf("成功删除%d条数据", count), c)
}
