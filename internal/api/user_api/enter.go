package user_api

// File: admin_server/api/user_api/enter.go
// Description: 用户API接口定义

// UserApi 用户API处理器结构体
type UserApi struct{}
