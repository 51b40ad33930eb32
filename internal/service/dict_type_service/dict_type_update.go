package dict_type_service

// File: admin_server/service/dict_type_service/dict_type_update.go
// Description: 字典类型修改，事务内读取并只更新可修改字段

import (
	"admin_server/internal/global"
	"admin_server/internal/models"
	"admin_server/internal/service/redis_service/key_lock"
	"errors"

	"gorm.io/gorm"
)

// UpdateRequest 修改字典类型的业务参数
type UpdateRequest struct {
	DictTypeID string
	DictName   string
	DictType   string
	Status     string
	Remark     string
	UpdateBy   string // 修改人用户ID
}

// Update 修改字典类型，记录不存在返回ErrDictTypeNotFound，字典类型与其他记录重复返回ErrDictTypeExist
func (s *DictTypeService) Update(req UpdateRequest) error {
	unlock, err := key_lock.Lock("dict_type", req.DictType)
	if err != nil {
		return err
	}
	defer unlock()

	err = global.DB.Transaction(func(tx *gorm.DB) error {
		var model models.DictTypeModel
		err := tx.Take(&model, "dict_type_id = ?", req.DictTypeID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDictTypeNotFound
		}
		if err != nil {
			return err
		}

		if model.DictType != req.DictType {
			var count int64
			err = tx.Unscoped().Model(&models.DictTypeModel{}).
				Where("dict_type = ? AND dict_type_id <> ?", req.DictType, req.DictTypeID).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrDictTypeExist
			}
		}

		return tx.Model(&model).Updates(map[string]any{
			"dict_name": req.DictName,
			"dict_type": req.DictType,
			"status":    req.Status,
			"remark":    req.Remark,
			"update_by": req.UpdateBy,
		}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = ErrDictTypeExist
	}
	if err != nil {
		return err
	}
	invalidate()
	s.log.Infof("字典类型 %s 修改成功", req.DictTypeID)
	return nil
}
