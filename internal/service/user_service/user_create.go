package user_service

// File: admin_server/service/user_service/user_create.go
// Description: 用户服务模块，实现用户创建的核心业务逻辑处理

import (
	"admin_server/internal/global"
	"admin_server/internal/models"
	"admin_server/internal/service/redis_service/key_lock"
	"admin_server/internal/utils/pwd"
	"admin_server/internal/utils/uid"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// UserCreateRequest 创建用户的业务请求参数结构体
type UserCreateRequest struct {
	Role     int8   `json:"role"`      // 用户角色
	UserName string `json:"user_name"` // 用户名
	Password string `json:"password"`  // 密码
}

// Create 创建用户，用户名重复返回ErrUserExist
func (u *UserService) Create(req UserCreateRequest) (user models.UserModel, err error) {
	unlock, err := key_lock.Lock("user", req.UserName)
	if err != nil {
		return
	}
	defer unlock()

	var count int64
	if err = global.DB.Model(&models.UserModel{}).Where("user_name = ?", req.UserName).Count(&count).Error; err != nil {
		return
	}
	if count > 0 {
		err = ErrUserExist
		return
	}

	hashPwd, err := pwd.GenerateFromPassword(req.Password)
	if err != nil {
		err = fmt.Errorf("密码加密失败 %w", err)
		return
	}
	user = models.UserModel{
		UserID:   uid.New(),
		UserName: req.UserName,
		Password: hashPwd,
		Role:     req.Role,
		Status:   models.StatusEnable,
	}
	err = global.DB.Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrUserExist
	}
	if err != nil {
		return
	}
	u.log.Infof("%s 用户创建成功", req.UserName)
	return
}
