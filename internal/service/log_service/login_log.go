package log_service

// File: admin_server/service/log_service/login_log.go
// Description: 登录日志服务模块，解析客户端IP、地理位置与User-Agent，记录成功/失败登录日志

import (
	"admin_server/internal/core"
	"admin_server/internal/global"
	"admin_server/internal/models"
	"admin_server/internal/service/mq_service"
	"admin_server/internal/utils/ip"
	"admin_server/internal/utils/uid"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mssola/useragent"
)

// LoginModule 登录日志中记录的登录模块
const LoginModule = "系统后台"

// LoginLogService 登录请求的客户端信息
type LoginLogService struct {
	IP       string // 客户端IP地址
	Addr     string // 客户端地理位置
	Net      string // 网络类型
	Browser  string // 浏览器及版本
	Os       string // 操作系统
	Device   string // 设备
	Module   string // 登录模块
	UserName string // 登录账号
}

// NewLoginLog 从请求上下文中提取客户端信息
func NewLoginLog(c *gin.Context) *LoginLogService {
	clientIP := c.ClientIP()
	l := &LoginLogService{
		IP:     clientIP,
		Addr:   core.GetIpAddr(clientIP),
		Net:    ip.NetType(clientIP),
		Module: LoginModule,
	}
	l.Browser, l.Os, l.Device = ParseUserAgent(c.Request.UserAgent())
	return l
}

// ParseUserAgent 解析User-Agent，返回浏览器、操作系统与设备
func ParseUserAgent(s string) (browser string, os string, device string) {
	if s == "" {
		return "Unknown", "Unknown", "Unknown"
	}
	ua := useragent.New(s)
	name, version := ua.Browser()
	browser = strings.TrimSpace(name + " " + version)
	if browser == "" {
		browser = "Unknown"
	}
	os = ua.OS()
	if os == "" {
		os = "Unknown"
	}
	switch {
	case ua.Bot():
		device = "Bot"
	case ua.Platform() != "":
		device = ua.Platform()
	case ua.Mobile():
		device = "Mobile"
	default:
		device = "Other"
	}
	return
}

// SuccessLog 记录登录成功日志
func (l LoginLogService) SuccessLog(userName string) {
	l.save(userName, models.LoginStatusSuccess, "登录成功")
}

// FailLog 记录登录失败日志，msg为失败原因
func (l LoginLogService) FailLog(userName string, msg string) {
	l.save(userName, models.LoginStatusFail, msg)
}

func (l LoginLogService) save(userName string, status string, msg string) {
	model := models.LoginLogModel{
		InfoID:        uid.New(),
		LoginName:     Truncate(userName, 50),
		Net:           l.Net,
		Ipaddr:        Truncate(l.IP, 50),
		LoginLocation: Truncate(l.Addr, 255),
		Browser:       Truncate(l.Browser, 50),
		Os:            Truncate(l.Os, 50),
		Device:        Truncate(l.Device, 50),
		Status:        status,
		Msg:           Truncate(msg, 255),
		LoginTime:     time.Now().Truncate(time.Second),
		Module:        Truncate(l.Module, 30),
	}
	if err := global.DB.Create(&model).Error; err != nil {
		global.Log.Errorf("登录日志写入失败 %s", err)
	}
	mq_service.SendLoginMsg(mq_service.LoginMessage{
		InfoID:    model.InfoID,
		LoginName: model.LoginName,
		Ipaddr:    model.Ipaddr,
		Location:  model.LoginLocation,
		Status:    model.Status,
		Msg:       model.Msg,
		LoginTime: model.LoginTime.Unix(),
	})
}

// Truncate 按字符截断到列宽
func Truncate(s string, size int) string {
	r := []rune(s)
	if len(r) <= size {
		return s
	}
	return string(r[:size])
}
