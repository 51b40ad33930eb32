package user_api

// File: admin_server/api/user_api/create.go
// Description: 用户创建API接口

import (
	"admin_server/internal/middleware"
	"admin_server/internal/service/user_service"
	"admin_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateRequest 创建用户请求参数结构体
type CreateRequest struct {
	UserName string `json:"user_name" binding:"required,max=50" label:"用户名"`
	Password string `json:"password" binding:"required,min=6" label:"密码"`
	Role     int8   `json:"role" binding:"required,oneof=1 2" label:"角色"`
}

// CreateView 创建用户，仅管理员可用
func (UserApi) CreateView(c *gin.Context) {
	cr := middleware.GetBind[CreateRequest](c)
	log := middleware.GetLog(c)

	user, err := user_service.NewUserService(log).Create(user_service.UserCreateRequest{
		UserName: cr.UserName,
		Password: cr.Password,
		Role:     cr.Role,
	})
	if err != nil {
		log.WithFields(map[string]interface{}{
			"user_name": cr.UserName,
			"error":     err,
		}).Error("failed to create user")
		response.FailWithMsg(err.Error(), c)
		return
	}
	response.OkWithID(user.UserID, c)
}
