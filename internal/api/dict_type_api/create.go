package dict_type_api

// File: admin_server/api/dict_type_api/create.go
// Description: 字典类型创建

import (
	"admin_server/internal/middleware"
	"admin_server/internal/service/dict_type_service"
	"admin_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateRequest 创建字典类型参数
type CreateRequest struct {
	DictName string `json:"dict_name" binding:"required,max=100" label:"字典名称"`
	DictType string `json:"dict_type" binding:"required,max=100" label:"字典类型"`
	Status   string `json:"status" binding:"omitempty,oneof=0 1" label:"状态"`
	Remark   string `json:"remark" binding:"max=500" label:"备注"`
}

// CreateView 创建字典类型，返回新记录ID
func (DictTypeApi) CreateView(c *gin.Context) {
	cr := middleware.GetBind[CreateRequest](c)
	log := middleware.GetLog(c)
	auth := middleware.GetAuth(c)

	model, err := dict_type_service.NewDictTypeService(log).Create(dict_type_service.CreateRequest{
		DictName: cr.DictName,
		DictType: cr.DictType,
		Status:   cr.Status,
		Remark:   cr.Remark,
		CreateBy: auth.UserID,
	})
	if err != nil {
		log.WithFields(map[string]interface{}{
			"dict_type": cr.DictType,
			"error":     err,
		}).Warn("failed to create dict type")
		response.FailWithMsg(err.Error(), c)
		return
	}
	response.OkWithID(model.DictTypeID, c)
}
