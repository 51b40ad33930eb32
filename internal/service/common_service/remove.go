package common_service

// File: admin_server/service/common_service/remove.go
// Description: 通用删除服务模块，以单条批量删除语句按主键列表删除记录

import (
	"admin_server/internal/global"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RemoveRequest 通用删除请求参数结构体
type RemoveRequest struct {
	Debug    bool          // 调试模式开关（开启时打印SQL）
	Column   string        // 主键列名，为空时取模型主键
	IDList   []string      // 需要删除的记录ID列表
	All      bool          // 清空全部记录，忽略IDList
	Log      *logrus.Entry // 日志实例
	Msg      string        // 操作对象描述（用于日志说明）
	Unscoped bool          // 是否物理删除（软删除模型有效）
}

// Remove 通用删除函数，返回实际删除条数
func Remove[T any](model T, req RemoveRequest) (successCount int64, err error) {
	log := req.Log
	if log == nil {
		log = global.Log
	}
	db := global.DB
	if req.Debug {
		db = db.Debug()
	}
	if req.Unscoped {
		db = db.Unscoped()
	}

	if req.All {
		log.Infof("清空 %s", req.Msg)
		db = db.Session(&gorm.Session{AllowGlobalUpdate: true})
	} else {
		if len(req.IDList) == 0 {
			return 0, errors.New("删除列表不能为空")
		}
		column := req.Column
		if column == "" {
			column, err = primaryKey(&model)
			if err != nil {
				return 0, err
			}
		}
		log.Infof("删除 %s idList %v", req.Msg, req.IDList)
		db = db.Where(NewConditions().In(column, req.IDList).Expression())
	}

	result := db.Delete(&model)
	if result.Error != nil {
		log.Errorf("删除 %s 失败 %s", req.Msg, result.Error)
		return 0, result.Error
	}

	successCount = result.RowsAffected
	log.Infof("删除 %s 成功, 成功%d个", req.Msg, successCount)
	return
}
