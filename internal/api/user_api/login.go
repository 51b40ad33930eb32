package user_api

// File: admin_server/api/user_api/login.go
// Description: 用户登录API接口

import (
	"admin_server/internal/global"
	"admin_server/internal/middleware"
	"admin_server/internal/models"
	"admin_server/internal/service/log_service"
	"admin_server/internal/service/online_service"
	"admin_server/internal/utils/captcha"
	"admin_server/internal/utils/jwts"
	"admin_server/internal/utils/pwd"
	"admin_server/internal/utils/response"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LoginRequest 用户登录请求参数结构体
type LoginRequest struct {
	UserName    string `json:"user_name" binding:"required,max=50" label:"用户名"`
	Password    string `json:"password" binding:"required" label:"密码"`
	CaptchaID   string `json:"captcha_id" binding:"required" label:"验证码ID"`
	CaptchaCode string `json:"captcha_code" binding:"required" label:"验证码"`
}

// LoginResponse 登录成功返回的token
type LoginResponse struct {
	Token string `json:"token"`
}

// LoginView 用户登录，成功与失败均记录登录日志，成功时登记在线会话
func (UserApi) LoginView(c *gin.Context) {
	cr := middleware.GetBind[LoginRequest](c)
	log := middleware.GetLog(c)
	loginLog := log_service.NewLoginLog(c)
	log.WithFields(map[string]interface{}{
		"user_name": cr.UserName,
	}).Info("login attempt initiated")

	if !captcha.CaptchaStore.Verify(cr.CaptchaID, cr.CaptchaCode, true) {
		loginLog.FailLog(cr.UserName, "图片验证码验证失败")
		response.FailWithMsg("图片验证码验证失败", c)
		return
	}

	var user models.UserModel
	err := global.DB.Take(&user, "user_name = ?", cr.UserName).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Errorf("查询用户 %s 失败 %s", cr.UserName, err)
		loginLog.FailLog(cr.UserName, "查询用户失败")
		response.FailWithMsg(err.Error(), c)
		return
	}
	if err != nil {
		log.WithFields(map[string]interface{}{
			"user_name": cr.UserName,
			"reason":    "user not found",
		}).Warn("login failed")
		loginLog.FailLog(cr.UserName, "用户名不存在")
		response.FailWithMsg("用户名或密码错误", c)
		return
	}

	if !pwd.CompareHashAndPassword(user.Password, cr.Password) {
		log.WithFields(map[string]interface{}{
			"user_id": user.UserID,
			"reason":  "invalid password",
		}).Warn("login failed")
		loginLog.FailLog(cr.UserName, "密码错误")
		response.FailWithMsg("用户名或密码错误", c)
		return
	}

	if user.Status != models.StatusEnable {
		loginLog.FailLog(cr.UserName, "用户已停用")
		response.FailWithMsg("用户已停用", c)
		return
	}

	token, claims, err := jwts.GetToken(jwts.ClaimsUserInfo{
		UserID:   user.UserID,
		UserName: user.UserName,
		Role:     user.Role,
	})
	if err != nil {
		log.Errorf("生成token失败 %s", err)
		response.FailWithMsg("登录失败", c)
		return
	}

	if _, err = online_service.Create(claims, loginLog); err != nil {
		log.Errorf("登记在线会话失败 %s", err)
		response.FailWithMsg("登录失败", c)
		return
	}

	now := time.Now()
	if err = global.DB.Model(&user).Update("last_login_date", now).Error; err != nil {
		log.Errorf("更新最后登录时间失败 %s", err)
	}

	log.WithFields(map[string]interface{}{
		"user_id": user.UserID,
		"role":    user.Role,
	}).Info("login successful")
	loginLog.SuccessLog(cr.UserName)
	response.OkWithData(LoginResponse{Token: token}, c)
}
