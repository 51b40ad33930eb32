package common_service

// File: admin_server/service/common_service/conditions.go
// Description: 动态查询条件构造器，按请求中实际存在的字段追加等值、范围、集合及模糊条件

import (
	"admin_server/internal/models"
	"strings"
	"time"

	"gorm.io/gorm/clause"
)

// Conditions 查询条件集合，值为空的条件自动忽略
type Conditions struct {
	exprs []clause.Expression
}

// NewConditions 创建空条件集合
func NewConditions() *Conditions {
	return &Conditions{}
}

func column(name string) clause.Column {
	return clause.Column{Name: name}
}

// Eq 等值条件，空字符串视为无约束
func (c *Conditions) Eq(col string, value string) *Conditions {
	if value != "" {
		c.exprs = append(c.exprs, clause.Eq{Column: column(col), Value: value})
	}
	return c
}

// Gte 范围下界（包含）
func (c *Conditions) Gte(col string, value *time.Time) *Conditions {
	if value != nil {
		c.exprs = append(c.exprs, clause.Gte{Column: column(col), Value: *value})
	}
	return c
}

// Lte 范围上界（包含）
func (c *Conditions) Lte(col string, value *time.Time) *Conditions {
	if value != nil {
		c.exprs = append(c.exprs, clause.Lte{Column: column(col), Value: *value})
	}
	return c
}

// Lt 范围上界（不包含）
func (c *Conditions) Lt(col string, value *time.Time) *Conditions {
	if value != nil {
		c.exprs = append(c.exprs, clause.Lt{Column: column(col), Value: *value})
	}
	return c
}

// InRange 时间范围条件，任一端为空时只约束另一端
func (c *Conditions) InRange(col string, r models.TimeRange) *Conditions {
	c.Gte(col, r.Begin())
	end, exclusive := r.End()
	if exclusive {
		return c.Lt(col, end)
	}
	return c.Lte(col, end)
}

// In 集合条件，空集合视为无约束
func (c *Conditions) In(col string, values []string) *Conditions {
	if len(values) > 0 {
		list := make([]any, 0, len(values))
		for _, v := range values {
			list = append(list, v)
		}
		c.exprs = append(c.exprs, clause.IN{Column: column(col), Values: list})
	}
	return c
}

// likeEscaper 转义LIKE通配符，ESCAPE字符使用!以兼容mysql、postgres和sqlite
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Like 多字段模糊匹配，任一字段命中即可，关键字中的%和_按普通字符匹配
func (c *Conditions) Like(cols []string, key string) *Conditions {
	if key == "" || len(cols) == 0 {
		return c
	}
	pattern := "%" + likeEscaper.Replace(key) + "%"
	var or []clause.Expression
	for _, col := range cols {
		or = append(or, clause.Expr{SQL: "? LIKE ? ESCAPE '!'", Vars: []any{column(col), pattern}})
	}
	c.exprs = append(c.exprs, clause.Or(or...))
	return c
}

// Len 已生效的条件数量
func (c *Conditions) Len() int {
	if c == nil {
		return 0
	}
	return len(c.exprs)
}

// Expression 合并为单个AND表达式，无条件时返回nil
func (c *Conditions) Expression() clause.Expression {
	if c.Len() == 0 {
		return nil
	}
	return clause.And(c.exprs...)
}
