package api

// File: admin_server/api/enter.go
// Description: 系统Api入口

import (
	"admin_server/internal/api/captcha_api"
	"admin_server/internal/api/dict_type_api"
	"admin_server/internal/api/login_log_api"
	"admin_server/internal/api/server_api"
	"admin_server/internal/api/user_api"
	"admin_server/internal/api/user_online_api"
)

// Api 全局Api定义
type Api struct {
	UserApi       user_api.UserApi
	CaptchaApi    captcha_api.CaptchaApi
	LoginLogApi   login_log_api.LoginLogApi
	UserOnlineApi user_online_api.UserOnlineApi
	DictTypeApi   dict_type_api.DictTypeApi
	ServerApi     server_api.ServerApi
}

var App = Api{}
