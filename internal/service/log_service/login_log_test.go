package log_service

import (
	"admin_server/internal/models"
	"admin_server/internal/utils/testdb"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestParseUserAgent(t *testing.T) {
	browser, os, device := ParseUserAgent(chromeUA)
	assert.Equal(t, "Chrome 120.0.0.0", browser)
	assert.Contains(t, os, "Windows")
	assert.Equal(t, "Windows", device)

	browser, os, device = ParseUserAgent("")
	assert.Equal(t, "Unknown", browser)
	assert.Equal(t, "Unknown", os)
	assert.Equal(t, "Unknown", device)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "内网地", Truncate("内网地址", 3))
}

func TestSuccessAndFailLog(t *testing.T) {
	db := testdb.Setup(t, &models.LoginLogModel{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/admin_server/login", nil)
	c.Request.Header.Set("User-Agent", chromeUA)
	c.Request.RemoteAddr = "192.168.1.10:5000"

	l := NewLoginLog(c)
	assert.Equal(t, "192.168.1.10", l.IP)
	assert.Equal(t, "内网", l.Net)
	assert.Equal(t, "内网", l.Addr)

	l.SuccessLog("admin")
	l.FailLog(strings.Repeat("x", 80), "密码错误")

	var list []models.LoginLogModel
	require.NoError(t, db.Order("status desc").Find(&list).Error)
	require.Len(t, list, 2)

	assert.Equal(t, models.LoginStatusSuccess, list[0].Status)
	assert.Equal(t, "admin", list[0].LoginName)
	assert.Equal(t, "登录成功", list[0].Msg)
	assert.Equal(t, LoginModule, list[0].Module)
	assert.Len(t, list[0].InfoID, 32)

	assert.Equal(t, models.LoginStatusFail, list[1].Status)
	assert.Equal(t, "密码错误", list[1].Msg)
	assert.Len(t, list[1].LoginName, 50)
}
