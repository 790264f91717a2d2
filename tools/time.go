package tools

import "time"

// CST 展示时区（UTC+8）
// 时间统一存 UTC，只在出参时经这里转换一次
var CST = time.FixedZone("CST", 8*3600)

const displayLayout = "2006-01-02 15:04"

// FormatCST 将 UTC 时间格式化为 UTC+8 展示字符串，零值返回空串
func FormatCST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(CST).Format(displayLayout)
}

// FormatCSTPtr 指针版本，nil 返回空串
func FormatCSTPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatCST(*t)
}

// ParseDate 解析 YYYY-MM-DD 的日期筛选参数（按 UTC 起点）
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}
