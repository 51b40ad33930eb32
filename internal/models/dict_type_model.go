package models

import (
	"time"

	"gorm.io/gorm"
)

// 通用启用状态
const (
	StatusDisable = "0"
	StatusEnable  = "1"
)

// DictTypeModel 字典类型模型
type DictTypeModel struct {
	DictTypeID string         `gorm:"column:dict_type_id;primaryKey;size:32" json:"dict_type_id"` // 字典类型ID
	DictName   string         `gorm:"size:100" json:"dict_name"`                                  // 字典名称
	DictType   string         `gorm:"size:100;uniqueIndex:uk_dict_type" json:"dict_type"`         // 字典类型（唯一）
	Status     string         `gorm:"type:char(1)" json:"status"`                                 // 状态 1 启用 0 停用
	Remark     string         `gorm:"size:500" json:"remark"`                                     // 备注
	CreateBy   string         `gorm:"size:32" json:"create_by"`                                   // 创建人
	UpdateBy   string         `gorm:"size:32" json:"update_by"`                                   // 更新人
	CreatedAt  time.Time      `json:"created_at"`                                                 // 创建时间
	UpdatedAt  time.Time      `json:"updated_at"`                                                 // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除标识
}

func (DictTypeModel) TableName() string {
	return "sys_dict_type"
}

// DictTypeResponse 字典类型对外展示字段
type DictTypeResponse struct {
	DictTypeID string `json:"dict_type_id"`
	DictName   string `json:"dict_name"`
	DictType   string `json:"dict_type"`
	Status     string `json:"status"`
	Remark     string `json:"remark"`
}
