package routers

import (
	"admin_server/internal/global"
	"admin_server/internal/models"
	"admin_server/internal/service/user_service"
	"admin_server/internal/utils/captcha"
	"admin_server/internal/utils/testdb"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
	Msg  string          `json:"msg"`
}

type client struct {
	t     *testing.T
	r     *gin.Engine
	token string
}

func (c *client) do(method, path string, body any) (int, envelope) {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("token", c.token)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	var res envelope
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return w.Code, res
}

func (c *client) data(res envelope, v any) {
	c.t.Helper()
	require.NoError(c.t, json.Unmarshal(res.Data, v))
}

func setup(t *testing.T) *client {
	t.Helper()
	testdb.Setup(t,
		&models.UserModel{},
		&models.LoginLogModel{},
		&models.UserOnlineModel{},
		&models.DictTypeModel{},
	)
	_, err := user_service.NewUserService(global.Log).Create(user_service.UserCreateRequest{
		UserName: "admin", Password: "admin123", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	return &client{t: t, r: NewEngine()}
}

func (c *client) login(name, password string) (int, envelope) {
	id := fmt.Sprintf("cap-%d", time.Now().UnixNano())
	require.NoError(c.t, captcha.CaptchaStore.Set(id, "1234"))
	return c.do(http.MethodPost, "/admin_server/login", gin.H{
		"user_name":    name,
		"password":     password,
		"captcha_id":   id,
		"captcha_code": "1234",
	})
}

func (c *client) mustLogin() {
	status, res := c.login("admin", "admin123")
	require.Equal(c.t, http.StatusOK, status, res.Msg)
	var data struct {
		Token string `json:"token"`
	}
	c.data(res, &data)
	require.NotEmpty(c.t, data.Token)
	c.token = data.Token
}

func TestAuthRequired(t *testing.T) {
	c := setup(t)

	status, res := c.do(http.MethodGet, "/admin_server/dict_type", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, 1002, res.Code)

	c.token = "garbage"
	status, _ = c.do(http.MethodGet, "/admin_server/dict_type", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLoginWritesLogAndSession(t *testing.T) {
	c := setup(t)

	status, res := c.login("admin", "wrong")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "用户名或密码错误", res.Msg)

	c.mustLogin()

	status, res = c.do(http.MethodGet, "/admin_server/login_log?status=0", nil)
	require.Equal(t, http.StatusOK, status, res.Msg)
	var page struct {
		List       []models.LoginLogModel `json:"list"`
		Total      int64                  `json:"total"`
		TotalPages int64                  `json:"total_pages"`
		PageNum    int                    `json:"page_num"`
	}
	c.data(res, &page)
	assert.EqualValues(t, 1, page.Total)
	assert.EqualValues(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.PageNum)
	require.Len(t, page.List, 1)
	assert.Equal(t, "密码错误", page.List[0].Msg)

	status, res = c.do(http.MethodGet, "/admin_server/user_online?user_name=admin", nil)
	require.Equal(t, http.StatusOK, status, res.Msg)
	var online struct {
		List  []models.UserOnlineModel `json:"list"`
		Total int64                    `json:"total"`
	}
	c.data(res, &online)
	assert.EqualValues(t, 1, online.Total)

	status, res = c.do(http.MethodGet, "/admin_server/users/info", nil)
	require.Equal(t, http.StatusOK, status, res.Msg)
	assert.NotContains(t, string(res.Data), "password")
}

func TestLoginLogValidation(t *testing.T) {
	c := setup(t)
	c.mustLogin()

	status, res := c.do(http.MethodGet, "/admin_server/login_log?status=5", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, res.Msg, "登录状态")

	status, res = c.do(http.MethodGet, "/admin_server/login_log?begin_time=2024/01/01", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, res.Msg, "开始时间")

	status, res = c.do(http.MethodDelete, "/admin_server/login_log", gin.H{"info_ids": []string{}})
	assert.Equal(t, http.StatusBadRequest, status)

	status, res = c.do(http.MethodDelete, "/admin_server/login_log", gin.H{"info_ids": []string{"missing"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "你要删除的登录日志不存在", res.Msg)

	status, res = c.do(http.MethodDelete, "/admin_server/login_log/clean", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "成功清空1条数据", res.Msg)
}

func TestDictTypeLifecycle(t *testing.T) {
	c := setup(t)
	c.mustLogin()

	status, res := c.do(http.MethodPost, "/admin_server/dict_type", gin.H{"dict_name": "用户性别", "dict_type": "sys_user_sex"})
	require.Equal(t, http.StatusOK, status, res.Msg)
	var created struct {
		ID string `json:"id"`
	}
	c.data(res, &created)
	assert.Len(t, created.ID, 32)

	status, res = c.do(http.MethodPost, "/admin_server/dict_type", gin.H{"dict_name": "重复", "dict_type": "sys_user_sex"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "字典类型已存在", res.Msg)

	status, res = c.do(http.MethodPost, "/admin_server/dict_type", gin.H{"dict_type": "x"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, res.Msg, "字典名称")

	status, res = c.do(http.MethodPut, "/admin_server/dict_type", gin.H{
		"dict_type_id": created.ID, "dict_name": "性别", "dict_type": "sys_user_sex", "status": "0", "remark": "r",
	})
	require.Equal(t, http.StatusOK, status, res.Msg)
	assert.Equal(t, fmt.Sprintf("字典类型<%s>数据更新成功", created.ID), res.Msg)

	status, res = c.do(http.MethodPut, "/admin_server/dict_type", gin.H{
		"dict_type_id": "missing", "dict_name": "性别", "dict_type": "sys_other", "status": "1",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "字典类型不存在", res.Msg)

	status, res = c.do(http.MethodGet, "/admin_server/dict_type/detail?dict_type_id="+created.ID, nil)
	require.Equal(t, http.StatusOK, status, res.Msg)
	var detail struct {
		Result models.DictTypeResponse `json:"result"`
	}
	c.data(res, &detail)
	assert.Equal(t, "性别", detail.Result.DictName)
	assert.Equal(t, "0", detail.Result.Status)

	status, res = c.do(http.MethodGet, "/admin_server/dict_type/detail", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "请求参数错误,请输入Id", res.Msg)

	status, res = c.do(http.MethodGet, "/admin_server/dict_type/detail?dict_type_id=missing", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "没有找到数据", res.Msg)

	// 已停用，不出现在全量列表中
	status, res = c.do(http.MethodGet, "/admin_server/dict_type/all", nil)
	require.Equal(t, http.StatusOK, status, res.Msg)
	var all struct {
		Result []models.DictTypeResponse `json:"result"`
	}
	c.data(res, &all)
	assert.Empty(t, all.Result)

	status, res = c.do(http.MethodGet, "/admin_server/dict_type?status=0&page_size=5", nil)
	require.Equal(t, http.StatusOK, status, res.Msg)
	assert.Contains(t, string(res.Data), `"total":1`)

	status, res = c.do(http.MethodDelete, "/admin_server/dict_type", gin.H{"dict_type_ids": []string{"missing"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "你要删除的字典类型不存在", res.Msg)

	status, res = c.do(http.MethodDelete, "/admin_server/dict_type", gin.H{"dict_type_ids": []string{created.ID, "missing"}})
	require.Equal(t, http.StatusOK, status, res.Msg)
	assert.Equal(t, "成功删除1条数据", res.Msg)
}

func TestForceOfflineRevokesToken(t *testing.T) {
	c := setup(t)
	testdb.SetupRedis(t)
	c.mustLogin()
	adminToken := c.token

	_, err := user_service.NewUserService(global.Log).Create(user_service.UserCreateRequest{
		UserName: "bob", Password: "bob12345", Role: models.RoleUser,
	})
	require.NoError(t, err)
	status, res := c.login("bob", "bob12345")
	require.Equal(t, http.StatusOK, status, res.Msg)
	var data struct {
		Token string `json:"token"`
	}
	c.data(res, &data)
	bobToken := data.Token

	var session models.UserOnlineModel
	require.NoError(t, global.DB.Take(&session, "user_name = ?", "bob").Error)

	// 普通用户无权强制下线
	c.token = bobToken
	status, _ = c.do(http.MethodDelete, "/admin_server/user_online", gin.H{"ids": []string{session.ID}})
	assert.Equal(t, http.StatusBadRequest, status)

	c.token = adminToken
	status, res = c.do(http.MethodDelete, "/admin_server/user_online", gin.H{"ids": []string{session.ID}})
	require.Equal(t, http.StatusOK, status, res.Msg)

	c.token = bobToken
	status, _ = c.do(http.MethodGet, "/admin_server/users/info", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	c.token = adminToken
	status, _ = c.do(http.MethodGet, "/admin_server/users/info", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestRemoveUserEndsSessions(t *testing.T) {
	for _, withRedis := range []bool{false, true} {
		t.Run(fmt.Sprintf("redis=%v", withRedis), func(t *testing.T) {
			c := setup(t)
			if withRedis {
				testdb.SetupRedis(t)
			}
			c.mustLogin()
			adminToken := c.token

			bob, err := user_service.NewUserService(global.Log).Create(user_service.UserCreateRequest{
				UserName: "bob", Password: "bob12345", Role: models.RoleUser,
			})
			require.NoError(t, err)
			status, res := c.login("bob", "bob12345")
			require.Equal(t, http.StatusOK, status, res.Msg)
			var data struct {
				Token string `json:"token"`
			}
			c.data(res, &data)
			bobToken := data.Token

			c.token = bobToken
			status, _ = c.do(http.MethodGet, "/admin_server/users/info", nil)
			require.Equal(t, http.StatusOK, status)

			c.token = adminToken
			status, res = c.do(http.MethodDelete, "/admin_server/users", gin.H{"user_ids": []string{bob.UserID}})
			require.Equal(t, http.StatusOK, status, res.Msg)
			assert.Equal(t, "成功删除1条数据", res.Msg)

			var sessions int64
			require.NoError(t, global.DB.Model(&models.UserOnlineModel{}).Where("u_id = ?", bob.UserID).Count(&sessions).Error)
			assert.Zero(t, sessions)

			c.token = bobToken
			status, _ = c.do(http.MethodGet, "/admin_server/users/info", nil)
			assert.Equal(t, http.StatusUnauthorized, status)

			c.token = adminToken
			status, _ = c.do(http.MethodGet, "/admin_server/users/info", nil)
			assert.Equal(t, http.StatusOK, status)
		})
	}
}

func TestLoginUnknownUserAndQueryError(t *testing.T) {
	c := setup(t)

	status, res := c.login("ghost", "whatever")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "用户名或密码错误", res.Msg)

	var log models.LoginLogModel
	require.NoError(t, global.DB.Take(&log, "login_name = ?", "ghost").Error)
	assert.Equal(t, "用户名不存在", log.Msg)

	// 查询失败时不再伪装为用户不存在
	require.NoError(t, global.DB.Migrator().DropTable(&models.UserModel{}))
	status, res = c.login("admin", "admin123")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEqual(t, "用户名或密码错误", res.Msg)
	assert.NotEmpty(t, res.Msg)

	var count int64
	require.NoError(t, global.DB.Model(&models.LoginLogModel{}).Where("msg = ?", "用户名不存在").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLogout(t *testing.T) {
	c := setup(t)
	c.mustLogin()

	status, res := c.do(http.MethodPost, "/admin_server/logout", nil)
	require.Equal(t, http.StatusOK, status, res.Msg)

	status, _ = c.do(http.MethodGet, "/admin_server/users/info", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestMetricsEndpoint(t *testing.T) {
	c := setup(t)
	c.do(http.MethodGet, "/admin_server/users/info", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin_server_http_requests_total")
}
