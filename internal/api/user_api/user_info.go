package user_api

// File: admin_server/api/user_api/user_info.go
// Description: 当前登录用户信息

import (
	"admin_server/internal/global"
	"admin_server/internal/middleware"
	"admin_server/internal/models"
	"admin_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// UserInfoView 查询当前登录用户信息
func (UserApi) UserInfoView(c *gin.Context) {
	auth := middleware.GetAuth(c)

	var user models.UserModel
	if err := global.DB.Take(&user, "user_id = ?", auth.UserID).Error; err != nil {
		response.FailWithMsg("用户不存在", c)
		return
	}
	response.OkWithResult(user, c)
}
