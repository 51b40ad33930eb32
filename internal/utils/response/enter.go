package response

// File: admin_server/utils/response/enter.go
// Description: 统一响应格式模块，定义API接口返回数据结构及快捷响应函数

import (
	"admin_server/internal/utils/validate"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// 响应状态码
const (
	CodeOk       = 0    // 成功
	CodeFail     = 1001 // 参数或业务错误
	CodeAuthFail = 1002 // 认证失败
)

// Response API接口统一响应结构体
type Response struct {
	Code int    `json:"code"` // 响应状态码（0表示成功，非0表示错误）
	Data any    `json:"data"` // 响应数据体
	Msg  string `json:"msg"`  // 响应消息描述
}

// PageData 分页列表数据
type PageData struct {
	List       any   `json:"list"`        // 当前页数据
	Total      int64 `json:"total"`       // 符合条件的总条数
	TotalPages int64 `json:"total_pages"` // 总页数
	PageNum    int   `json:"page_num"`    // 当前页码
}

func response(status int, code int, data any, msg string, c *gin.Context) {
	c.JSON(status, Response{
		Code: code,
		Data: data,
		Msg:  msg,
	})
}

// Ok 通用成功响应（自定义数据和消息）
func Ok(data any, msg string, c *gin.Context) {
	response(http.StatusOK, CodeOk, data, msg, c)
}

// OkWithData 成功响应（仅返回数据，默认消息）
func OkWithData(data any, c *gin.Context) {
	Ok(data, "成功", c)
}

// OkWithMsg 成功响应，消息同时放入data.msg
func OkWithMsg(msg string, c *gin.Context) {
	Ok(gin.H{"msg": msg}, msg, c)
}

// OkWithID 创建成功响应，返回生成的记录ID
func OkWithID(id string, c *gin.Context) {
	Ok(gin.H{"id": id}, "创建成功", c)
}

// OkWithResult 单条或全部数据响应
func OkWithResult(result any, c *gin.Context) {
	Ok(gin.H{"result": result}, "成功", c)
}

// OkWithPage 分页列表响应
func OkWithPage(list any, total int64, pageNum int, pageSize int, c *gin.Context) {
	Ok(PageData{
		List:       list,
		Total:      total,
		TotalPages: TotalPages(total, pageSize),
		PageNum:    pageNum,
	}, "成功", c)
}

// TotalPages 根据总条数和每页条数计算总页数
func TotalPages(total int64, pageSize int) int64 {
	if pageSize <= 0 {
		return 0
	}
	return int64(math.Ceil(float64(total) / float64(pageSize)))
}

// Fail 通用失败响应（自定义状态码和消息）
func Fail(code int, msg string, c *gin.Context) {
	response(http.StatusBadRequest, code, nil, msg, c)
}

// FailWithMsg 失败响应（默认错误码，自定义消息）
func FailWithMsg(msg string, c *gin.Context) {
	Fail(CodeFail, msg, c)
}

// FailWithError 失败响应，校验错误翻译为字段级中文提示
func FailWithError(err error, c *gin.Context) {
	FailWithMsg(validate.ValidateError(err), c)
}

// FailWithAuth 认证失败响应
func FailWithAuth(msg string, c *gin.Context) {
	response(http.StatusUnauthorized, CodeAuthFail, nil, msg, c)
}
