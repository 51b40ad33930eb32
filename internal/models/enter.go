package models

// File: admin_server/models/enter.go
// Description: 公共请求参数定义，提供分页参数与时间范围参数结构体

import (
	"admin_server/internal/utils/timex"
	"time"
)

// 分页默认值及上限
const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageInfo 分页查询参数结构体
type PageInfo struct {
	PageNum  int `form:"page_num" json:"page_num"`   // 当前页码（从1开始）
	PageSize int `form:"page_size" json:"page_size"` // 每页记录数
}

// GetPageNum 页码，小于1时为第1页
func (p PageInfo) GetPageNum() int {
	if p.PageNum <= 0 {
		return DefaultPageNum
	}
	return p.PageNum
}

// GetPageSize 每页条数，小于1时为默认值，超过上限时截断
func (p PageInfo) GetPageSize() int {
	if p.PageSize <= 0 {
		return DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		return MaxPageSize
	}
	return p.PageSize
}

// Offset 当前页的偏移量
func (p PageInfo) Offset() int {
	return (p.GetPageNum() - 1) * p.GetPageSize()
}

// TimeRange 时间范围查询参数，闭区间
type TimeRange struct {
	BeginTime string `form:"begin_time" binding:"omitempty,date_time" label:"开始时间"`
	EndTime   string `form:"end_time" binding:"omitempty,date_time" label:"结束时间"`
}

// Begin 范围起点
func (t TimeRange) Begin() *time.Time {
	return timex.Begin(t.BeginTime)
}

// End 范围终点，仅日期时为次日零点（开区间）
func (t TimeRange) End() (*time.Time, bool) {
	return timex.End(t.EndTime)
}
