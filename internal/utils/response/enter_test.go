package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	assert.EqualValues(t, 0, TotalPages(0, 10))
	assert.EqualValues(t, 1, TotalPages(10, 10))
	assert.EqualValues(t, 2, TotalPages(11, 10))
	assert.EqualValues(t, 0, TotalPages(5, 0))
}

func TestOkWithPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OkWithPage([]int{1, 2}, 25, 3, 10, c)
	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Code int      `json:"code"`
		Data PageData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, CodeOk, res.Code)
	assert.EqualValues(t, 25, res.Data.Total)
	assert.EqualValues(t, 3, res.Data.TotalPages)
	assert.Equal(t, 3, res.Data.PageNum)
}

func TestFail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FailWithMsg("没有找到数据", c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"code":1001,"data":null,"msg":"没有找到数据"}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	FailWithAuth("认证失败", c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
