package user_service

// File: admin_server/service/user_service/enter.go
// Description: 用户服务模块，封装用户相关业务逻辑的核心服务实现

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// ErrUserExist 用户名已存在
var ErrUserExist = errors.New("用户名已存在")

// UserService 用户服务结构体，承载用户业务逻辑处理及日志实例
type UserService struct {
	log *logrus.Entry
}

// NewUserService 创建UserService实例的构造函数
func NewUserService(log *logrus.Entry) *UserService {
	return &UserService{
		log: log,
	}
}
