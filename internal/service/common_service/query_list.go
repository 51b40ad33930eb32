package common_service

// File: admin_server/service/common_service/query_list.go
// Description: 通用查询服务模块，提供分页列表、全量列表及单条详情的泛型查询能力

import (
	"admin_server/internal/global"
	"admin_server/internal/models"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// MaxAllSize 全量查询的最大返回条数
const MaxAllSize = 1000

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("record not found")

// QueryListRequest 通用分页查询请求参数结构体
type QueryListRequest struct {
	Debug    bool            // 调试模式开关（开启时打印SQL）
	Where    *Conditions     // 动态过滤条件
	Sort     string          // 排序规则，为空时按主键升序
	PageInfo models.PageInfo // 分页信息
}

// QueryList 通用分页查询，先按过滤条件统计总数，再按排序取当前页
func QueryList[T any](model T, req QueryListRequest) (list []T, count int64, err error) {
	db := global.DB.Model(&model)
	if req.Debug {
		db = db.Debug()
	}
	if expr := req.Where.Expression(); expr != nil {
		db = db.Where(expr)
	}
	// 计数与分页查询共用同一组过滤条件
	db = db.Session(&gorm.Session{})

	if err = db.Count(&count).Error; err != nil {
		return
	}

	sort := req.Sort
	if sort == "" {
		sort, err = primaryKeySort(&model)
		if err != nil {
			return
		}
	}
	err = db.Order(sort).
		Offset(req.PageInfo.Offset()).
		Limit(req.PageInfo.GetPageSize()).
		Find(&list).Error
	if list == nil {
		list = make([]T, 0)
	}
	return
}

// QueryAllRequest 全量查询请求参数结构体
type QueryAllRequest struct {
	Where *Conditions // 动态过滤条件
	Sort  string      // 排序规则，为空时按主键升序
	Limit int         // 最大条数，不超过MaxAllSize
}

// QueryAll 查询全部符合条件的记录并映射为响应结构体R，结果数受MaxAllSize限制
func QueryAll[R any](model any, req QueryAllRequest) (list []R, err error) {
	db := global.DB.Model(model)
	if expr := req.Where.Expression(); expr != nil {
		db = db.Where(expr)
	}

	sort := req.Sort
	if sort == "" {
		sort, err = primaryKeySort(model)
		if err != nil {
			return
		}
	}
	limit := req.Limit
	if limit <= 0 || limit > MaxAllSize {
		limit = MaxAllSize
	}
	err = db.Order(sort).Limit(limit).Find(&list).Error
	if list == nil {
		list = make([]R, 0)
	}
	return
}

// Detail 按条件查询单条记录并映射为响应结构体R，无记录时返回ErrNotFound
func Detail[R any](model any, where *Conditions) (result R, err error) {
	expr := where.Expression()
	if expr == nil {
		err = errors.New("missing query condition")
		return
	}
	err = global.DB.Model(model).Where(expr).Take(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrNotFound
	}
	return
}

// primaryKeySort 主键升序的排序规则
func primaryKeySort(model any) (string, error) {
	pk, err := primaryKey(model)
	if err != nil {
		return "", err
	}
	return pk + " asc", nil
}

// primaryKey 解析模型的主键列名
func primaryKey(model any) (string, error) {
	stmt := &gorm.Statement{DB: global.DB}
	if err := stmt.Parse(model); err != nil {
		return "", err
	}
	field := stmt.Schema.PrioritizedPrimaryField
	if field == nil {
		return "", fmt.Errorf("%s 没有主键", stmt.Schema.Name)
	}
	return field.DBName, nil
}
