package dict_type_service

// File: admin_server/service/dict_type_service/dict_type_remove.go
// Description: 字典类型批量删除与全量查询

import (
	"admin_server/internal/models"
	"admin_server/internal/service/common_service"
	"slices"
)

// Remove 按ID批量物理删除，返回实际删除条数
func (s *DictTypeService) Remove(ids []string) (int64, error) {
	count, err := common_service.Remove(models.DictTypeModel{}, common_service.RemoveRequest{
		IDList:   ids,
		Log:      s.log,
		Msg:      "字典类型",
		Unscoped: true,
	})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		invalidate()
	}
	return count, nil
}

// All 全部启用且未删除的字典类型，按主键升序
// 返回副本，调用方可自由修改
func (s *DictTypeService) All() ([]models.DictTypeResponse, error) {
	if item := allCache.Get(allCacheKey); item != nil {
		return slices.Clone(item.Value()), nil
	}
	gen := cacheGen()
	list, err := common_service.QueryAll[models.DictTypeResponse](&models.DictTypeModel{}, common_service.QueryAllRequest{
		Where: common_service.NewConditions().Eq("status", models.StatusEnable),
	})
	if err != nil {
		return nil, err
	}
	storeAll(gen, list)
	return slices.Clone(list), nil
}
