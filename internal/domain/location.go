package domain

import (
	"fmt"
	"time"
)

const (
	GenderBoy  = "boy"
	GenderGirl = "girl"
)

// Location 是一次抓取的目标页面（年份 + 可选性别 + 页码 → 完整 URL）。
//
// 约束：由 Plan 生成，只被 Fetch 消费一次，不跨页面保留。
type Location struct {
	Year   int    `json:"year"`
	Gender string `json:"gender,omitempty"` // "" 表示不分性别（<=2017）
	Page   int    `json:"page"`             // 1..N；1 表示无分页后缀
	URL    string `json:"url"`
}

func (l Location) String() string {
	g := l.Gender
	if g == "" {
		g = "all"
	}
	return fmt.Sprintf("%d/%s/p%d", l.Year, g, l.Page)
}

// Page 是单页 HTML 的抽取结果。
type Page struct {
	// Tables 是匹配到的排行榜 table 数量；0 表示页面结构不符（不是错误）。
	Tables int
	// Names 是原始候选（已去标签、去首尾空白，未校验、未去重）。
	Names []string
}

// PageResult 记录单个 Location 的处理结果。失败只影响本页，不向上抛错。
type PageResult struct {
	Location  Location      `json:"location"`
	Status    string        `json:"status"`
	ErrorCode string        `json:"error_code,omitempty"`
	ErrorMsg  string        `json:"error_msg,omitempty"`
	Tables    int           `json:"tables"`
	Names     []string      `json:"names"`
	Duration  time.Duration `json:"duration"`
}
