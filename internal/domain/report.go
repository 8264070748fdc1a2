package domain

import (
	"encoding/json"
	"sort"
	"time"
)

const (
	PageStatusOK     = "ok"
	PageStatusEmpty  = "empty"
	PageStatusFailed = "failed"
)

const (
	ErrCodeFetchFailed = "fetch_failed"
	ErrCodeParseFailed = "parse_failed"
	ErrCodeNoTable     = "no_table"
	ErrCodeCanceled    = "canceled"
)

// HarvestReport 是一次 harvest 的对外稳定输出（report.json / CLI 摘要）。
type HarvestReport struct {
	Source   string `json:"source"`
	YearFrom int    `json:"year_from"`
	YearTo   int    `json:"year_to"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Summary HarvestSummary `json:"summary"`
	Years   []YearSummary  `json:"years"`

	// Accumulated 是去重后的候选总数（过滤前）。
	Accumulated int `json:"accumulated"`
	// Valid 是通过校验的条数；Fallback=true 时为 0。
	Valid int `json:"valid"`
	// Fallback 表示过滤结果为空，Names 改为输出未过滤的全集。
	Fallback bool `json:"fallback"`

	Names []string `json:"names"`
}

type HarvestSummary struct {
	Pages  int `json:"pages"`
	OK     int `json:"ok"`
	Empty  int `json:"empty"`
	Failed int `json:"failed"`
}

// YearSummary 记录单个年份的抓取统计。
type YearSummary struct {
	Year   int `json:"year"`
	Pages  int `json:"pages"`
	OK     int `json:"ok"`
	Empty  int `json:"empty"`
	Failed int `json:"failed"`

	// Extracted 是该年所有页面抽取到的原始条数（含跨页重复）。
	Extracted int `json:"extracted"`
	// New 是该年首次出现的候选数。
	New int `json:"new"`
}

// Count 按页面结果累加计数。
func (y *YearSummary) Count(r PageResult) {
	y.Pages++
	switch r.Status {
	case PageStatusOK:
		y.OK++
	case PageStatusEmpty:
		y.Empty++
	default:
		y.Failed++
	}
	y.Extracted += len(r.Names)
}

// Finalize 做三件事：
// 1) 时间统一为 UTC
// 2) years 按年份升序
// 3) summary 由 years 计算得出
func (r *HarvestReport) Finalize() {
	r.StartedAt = r.StartedAt.UTC()
	r.FinishedAt = r.FinishedAt.UTC()

	sort.SliceStable(r.Years, func(i, j int) bool { return r.Years[i].Year < r.Years[j].Year })

	var s HarvestSummary
	for _, y := range r.Years {
		s.Pages += y.Pages
		s.OK += y.OK
		s.Empty += y.Empty
		s.Failed += y.Failed
	}
	r.Summary = s

	if r.Names == nil {
		r.Names = []string{}
	}
	if r.Years == nil {
		r.Years = []YearSummary{}
	}
}

// MarshalJSON 仅用于集中约束输出的稳定性（避免未来不小心引入非确定字段）。
func (r HarvestReport) MarshalJSON() ([]byte, error) {
	type Alias HarvestReport
	return json.Marshal(Alias(r))
}
