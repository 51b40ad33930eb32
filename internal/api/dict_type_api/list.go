package dict_type_api

// File: admin_server/api/dict_type_api/list.go
// Description: 字典类型分页查询

import (
	"admin_server/internal/middleware"
	"admin_server/internal/models"
	"admin_server/internal/service/common_service"
	"admin_server/internal/utils/response"

	"github.com/gin-gonic/gin"
)

// ListRequest 字典类型列表查询参数，时间范围作用于创建时间
type ListRequest struct {
	models.PageInfo
	models.TimeRange
	DictTypeID string `form:"dict_type_id" binding:"omitempty,max=32" label:"字典类型ID"`
	DictName   string `form:"dict_name" binding:"omitempty,max=100" label:"字典名称"`
	DictType   string `form:"dict_type" binding:"omitempty,max=100" label:"字典类型"`
	Status     string `form:"status" binding:"omitempty,oneof=0 1" label:"状态"`
}

// ListView 字典类型分页查询
func (DictTypeApi) ListView(c *gin.Context) {
	cr := middleware.GetBind[ListRequest](c)

	list, count, err := common_service.QueryList(models.DictTypeModel{}, common_service.QueryListRequest{
		Where: common_service.NewConditions().
			Eq("dict_type_id", cr.DictTypeID).
			Eq("dict_name", cr.DictName).
			Eq("dict_type", cr.DictType).
			Eq("status", cr.Status).
			InRange("created_at", cr.TimeRange),
		PageInfo: cr.PageInfo,
	})
	if err != nil {
		middleware.GetLog(c).Errorf("查询字典类型失败 %s", err)
		response.FailWithMsg(err.Error(), c)
		return
	}

	res := make([]models.DictTypeResponse, 0, len(list))
	for _, m := range list {
		res = append(res, models.DictTypeResponse{
			DictTypeID: m.DictTypeID,
			DictName:   m.DictName,
			DictType:   m.DictType,
			Status:     m.Status,
			Remark:     m.Remark,
		})
	}
	response.OkWithPage(res, count, cr.GetPageNum(), cr.GetPageSize(), c)
}
