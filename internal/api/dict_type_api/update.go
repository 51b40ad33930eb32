package dict_type_api

// File: admin_server/api/dict_type_api/update.go
// Description: 字典类型修改

import (
	"admin_server/internal/middleware"
	"admin_server/internal/service/dict_type_service"
	"admin_server/internal/utils/response"
	"fmt"

	"github.com/gin-gonic/gin"
)

// UpdateRequest 修改字典类型参数
type UpdateRequest struct {
	DictTypeID string `json:"dict_type_id" binding:"required,max=32" label:"字典类型ID"`
	DictName   string `json:"dict_name" binding:"required,max=100" label:"字典名称"`
	DictType   string `json:"dict_type" binding:"required,max=100" label:"字典类型"`
	Status     string `json:"status" binding:"required,oneof=0 1" label:"状态"`
	Remark     string `json:"remark" binding:"max=500" label:"备注"`
}

// UpdateView 修改字典类型
func (DictTypeApi) UpdateView(c *gin.Context) {
	cr := middleware.GetBind[UpdateRequest](c)
	log := middleware.GetLog(c)
	auth := middleware.GetAuth(c)

	err := dict_type_service.NewDictTypeService(log).Update(dict_type_service.UpdateRequest{
		DictTypeID: cr.DictTypeID,
		DictName:   cr.DictName,
		DictType:   cr.DictType,
		Status:     cr.Status,
		Remark:     cr.Remark,
		UpdateBy:   auth.UserID,
	})
	if err != nil {
		response.FailWithMsg(err.Error(), c)
		return
	}
	response.OkWithMsg(fmt.Sprintf("字典类型<%s>数据更新成功", cr.DictTypeID), c)
}
