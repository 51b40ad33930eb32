package dict_type_service

// File: admin_server/service/dict_type_service/dict_type_create.go
// Description: 字典类型创建，同一字典类型加锁后检查唯一性，数据库唯一索引兜底

import (
	"admin_server/internal/global"
	"admin_server/internal/models"
	"admin_server/internal/service/redis_service/key_lock"
	"admin_server/internal/utils/uid"
	"errors"

	"gorm.io/gorm"
)

// CreateRequest 创建字典类型的业务参数
type CreateRequest struct {
	DictName string
	DictType string
	Status   string // 为空时默认启用
	Remark   string
	CreateBy string // 创建人用户ID
}

// Create 创建字典类型，返回新记录
func (s *DictTypeService) Create(req CreateRequest) (model models.DictTypeModel, err error) {
	unlock, err := key_lock.Lock("dict_type", req.DictType)
	if err != nil {
		return
	}
	defer unlock()

	var count int64
	err = global.DB.Unscoped().Model(&models.DictTypeModel{}).
		Where("dict_type = ?", req.DictType).
		Count(&count).Error
	if err != nil {
		return
	}
	if count > 0 {
		err = ErrDictTypeExist
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusEnable
	}
	model = models.DictTypeModel{
		DictTypeID: uid.New(),
		DictName:   req.DictName,
		DictType:   req.DictType,
		Status:     status,
		Remark:     req.Remark,
		CreateBy:   req.CreateBy,
	}
	err = global.DB.Create(&model).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrDictTypeExist
	}
	if err != nil {
		return
	}
	invalidate()
	s.log.Infof("字典类型 %s 创建成功 %s", model.DictType, model.DictTypeID)
	return
}
