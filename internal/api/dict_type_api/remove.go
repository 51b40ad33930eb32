package dict_type_api

// File: admin_server/api/dict_type_api/remove.go
// Description: 字典类型批量删除

import (
	"admin_server/internal/middleware"
	"admin_server/internal/service/dict_type_service"
	"admin_server/internal/utils/response"
	"fmt"

	"github.com/gin-gonic/gin"
)

// RemoveRequest 批量删除字典类型参数
type RemoveRequest struct {
	DictTypeIDs []string `json:"dict_type_ids" binding:"required,min=1,dive,required,max=32" label:"字典类型ID列表"`
}

// RemoveView 按ID批量删除字典类型
func (DictTypeApi) RemoveView(c *gin.Context) {
	cr := middleware.GetBind[RemoveRequest](c)

	count, err := dict_type_service.NewDictTypeService(middleware.GetLog(c)).Remove(cr.DictTypeIDs)
	if err != nil {
		response.FailWithMsg(err.Error(), c)
		return
	}
	if count == 0 {
		response.FailWithMsg("你要删除的字典类型不存在", c)
		return
	}
	response.OkWithMsg(fmt.Sprintf("成功删除%d条数据", count), c)
}
