package captcha_api

// File: admin_server/api/captcha_api/enter.go
// Description: 验证码接口模块，提供图片验证码生成接口

import (
	"admin_server/internal/middleware"
	"admin_server/internal/utils/captcha"
	"admin_server/internal/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/mojocn/base64Captcha"
)

// CaptchaApi 验证码接口处理结构体
type CaptchaApi struct{}

// GenerateResponse 验证码生成接口的响应结构体
type GenerateResponse struct {
	CaptchaID string `json:"captcha_id"` // 验证码唯一标识ID
	Captcha   string `json:"captcha"`    // 验证码图片Base64编码字符串
}

// GenerateView 生成4位数字图片验证码
func (CaptchaApi) GenerateView(c *gin.Context) {
	// 高60 宽200 干扰点2 干扰线样式4 长度4
	driver := base64Captcha.NewDriverString(60, 200, 2, 4, 4, "0123456789", nil, nil, nil)
	cp := base64Captcha.NewCaptcha(driver, captcha.CaptchaStore)
	id, b64s, _, err := cp.Generate()
	if err != nil {
		middleware.GetLog(c).Errorf("图片验证码生成失败 %s", err)
		response.FailWithMsg("图片验证码生成失败", c)
		return
	}
	response.OkWithData(GenerateResponse{
		CaptchaID: id,
		Captcha:   b64s,
	}, c)
}
