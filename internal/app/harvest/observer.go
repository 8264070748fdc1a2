package harvest

import (
	"time"

	"github.com/John-Robertt/seimei/internal/config"
	"github.com/John-Robertt/seimei/internal/domain"
)

// Observer 用于把“抓取进度/年度统计/回退提示”从核心执行流程中解耦出来。
//
// 约束：
// - harvest 包只负责发事件，不做任何输出。
// - Observer 的实现必须并发安全：Concurrency>1 时 OnPageDone 来自多个 goroutine。
type Observer interface {
	// OnStart 在 Execute 开始时调用。
	OnStart(eff config.EffectiveConfig, source string)
	// OnPageDone 在单页抓取+解析结束时调用（成功与失败都会调用）。
	OnPageDone(res domain.PageResult)
	// OnYearDone 在一个年份的所有页面并入集合后调用；accumulated 是当前集合大小。
	OnYearDone(y domain.YearSummary, accumulated int, dur time.Duration)
	// OnFallback 在校验后为空、改为输出未过滤全集时调用。
	OnFallback(accumulated int)
	// OnSnapshotFailed 在快照落盘失败时调用（不影响抓取结果）。
	OnSnapshotFailed(loc domain.Location, err error)
	// OnDone 在报告定稿后调用。
	OnDone(r domain.HarvestReport)
}

type nopObserver struct{}

func (nopObserver) OnStart(config.EffectiveConfig, string) {}
func (nopObserver) OnPageDone(domain.PageResult) {}
func (nopObserver) OnYearDone(domain.YearSummary, int, time.Duration) {}
func (nopObserver) OnFallback(int) {}
func (nopObserver) OnSnapshotFailed(domain.Location, error) {}
func (nopObserver) OnDone(domain.HarvestReport) {}
