package dict_type_api

// File: admin_server/api/dict_type_api/detail.go
// Description: 字典类型详情与全量查询

import (
	"admin_server/internal/middleware"
	"admin_server/internal/models"
	"admin_server/internal/service/common_service"
	"admin_server/internal/service/dict_type_service"
	"admin_server/internal/utils/response"
	"errors"

	"github.com/gin-gonic/gin"
)

// DetailRequest 字典类型详情参数
type DetailRequest struct {
	DictTypeID string `form:"dict_type_id" binding:"max=32" label:"字典类型ID"`
}

// DetailView 按ID查询字典类型
func (DictTypeApi) DetailView(c *gin.Context) {
	cr := middleware.GetBind[DetailRequest](c)
	if cr.DictTypeID == "" {
		response.FailWithMsg("请求参数错误,请输入Id", c)
		return
	}

	res, err := common_service.Detail[models.DictTypeResponse](&models.DictTypeModel{},
		common_service.NewConditions().Eq("dict_type_id", cr.DictTypeID))
	if errors.Is(err, common_service.ErrNotFound) {
		response.FailWithMsg("没有找到数据", c)
		return
	}
	if err != nil {
		response.FailWithMsg(err.Error(), c)
		return
	}
	response.OkWithResult(res, c)
}

// AllView 全部启用的字典类型
func (DictTypeApi) AllView(c *gin.Context) {
	list, err := dict_type_service.NewDictTypeService(middleware.GetLog(c)).All()
	if err != nil {
		response.FailWithMsg(err.Error(), c)
		return
	}
	response.OkWithResult(list, c)
}
