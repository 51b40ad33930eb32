package timex

// File: admin_server/utils/timex/enter.go
// Description: 时间参数解析工具，支持日期与日期时间两种格式的查询参数

import "time"

// 支持的查询时间格式
var layouts = []string{time.DateTime, time.DateOnly}

// Parse 按本地时区解析时间字符串，返回是否仅包含日期
func Parse(s string) (t time.Time, dateOnly bool, err error) {
	for _, layout := range layouts {
		t, err = time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, layout == time.DateOnly, nil
		}
	}
	return
}

// Valid 判断时间字符串格式是否合法
func Valid(s string) bool {
	_, _, err := Parse(s)
	return err == nil
}

// Begin 解析范围起点，空字符串或格式错误返回nil
func Begin(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, _, err := Parse(s)
	if err != nil {
		return nil
	}
	return &t
}

// End 解析范围终点
// 仅日期时返回次日零点且exclusive为true，调用方应使用 < 比较，使整天包含在范围内
func End(s string) (end *time.Time, exclusive bool) {
	if s == "" {
		return nil, false
	}
	t, dateOnly, err := Parse(s)
	if err != nil {
		return nil, false
	}
	if dateOnly {
		t = t.AddDate(0, 0, 1)
	}
	return &t, dateOnly
}
