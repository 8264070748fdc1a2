// Package harvest 按年份遍历排行榜页面，累积候选名字并产出排序后的名字表。
package harvest

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/John-Robertt/seimei/internal/config"
	"github.com/John-Robertt/seimei/internal/domain"
	"github.com/John-Robertt/seimei/internal/infra/snapshot"
	"github.com/John-Robertt/seimei/internal/name"
	"github.com/John-Robertt/seimei/internal/source"
)

// Execute 执行一次完整抓取，并返回定稿后的 HarvestReport。
//
// 约束：
// - 年份升序、逐年处理；年内最多 eff.Concurrency 个页面并发
// - 一年的页面全部结束后，才按 Plan 顺序把名字并入集合（结果与抓取时序无关）
// - 单页失败只计数，不重试、不中断
// - ctx 取消后不再调度新年份，已收集的结果照常定稿
// - 过滤后为空时回退为未过滤全集（Fallback=true）
func Execute(ctx context.Context, eff config.EffectiveConfig, src source.Source, c *http.Client, obs Observer) domain.HarvestReport {
	if obs == nil {
		obs = nopObserver{}
	}
	obs.OnStart(eff, src.Name())

	rr := domain.HarvestReport{
		Source:    src.Name(),
		YearFrom:  eff.YearFrom,
		YearTo:    eff.YearTo,
		StartedAt: time.Now().UTC(),
		Years:     make([]domain.YearSummary, 0, eff.Years()),
	}

	var fetcher source.Source = src
	if store := snapshot.New(eff.SnapshotDir); store.Enabled() {
		fetcher = snapshotSource{Source: src, store: store, obs: obs}
	}

	workers := eff.Concurrency
	if workers < 1 {
		workers = 1
	}

	set := domain.NewNameSet()
	for year := eff.YearFrom; year <= eff.YearTo; year++ {
		if ctx.Err() != nil {
			break
		}
		yearStarted := time.Now()

		results := visitAll(ctx, fetcher, src.Plan(year), c, workers, obs)

		ys := domain.YearSummary{Year: year}
		for _, r := range results {
			ys.Count(r)
			for _, n := range r.Names {
				if set.Add(name.Normalize(n)) {
					ys.New++
				}
			}
		}
		rr.Years = append(rr.Years, ys)
		obs.OnYearDone(ys, set.Len(), time.Since(yearStarted))
	}

	all := set.Sorted()
	valid := make([]string, 0, len(all))
	for _, n := range all {
		if name.IsValid(n) {
			valid = append(valid, n)
		}
	}

	rr.Accumulated = len(all)
	if len(valid) == 0 {
		rr.Fallback = true
		rr.Names = all
		obs.OnFallback(len(all))
	} else {
		rr.Valid = len(valid)
		rr.Names = valid
	}

	rr.FinishedAt = time.Now().UTC()
	rr.Finalize()
	obs.OnDone(rr)
	return rr
}

// visitAll 访问 locs 中的每个页面，返回与 locs 同序的结果。
func visitAll(ctx context.Context, src source.Source, locs []domain.Location, c *http.Client, workers int, obs Observer) []domain.PageResult {
	results := make([]domain.PageResult, len(locs))
	if workers <= 1 {
		for i, loc := range locs {
			results[i] = source.Visit(ctx, src, loc, c)
			obs.OnPageDone(results[i])
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, loc := range locs {
		g.Go(func() error {
			// 每个 goroutine 只写自己的下标，无需加锁。
			results[i] = source.Visit(ctx, src, loc, c)
			obs.OnPageDone(results[i])
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// snapshotSource 在抓取成功后把原始 HTML 落盘；落盘失败只通知，不影响抓取结果。
type snapshotSource struct {
	source.Source
	store snapshot.Store
	obs   Observer
}

func (s snapshotSource) Fetch(ctx context.Context, loc domain.Location, c *http.Client) ([]byte, error) {
	b, err := s.Source.Fetch(ctx, loc, c)
	if err != nil {
		return nil, err
	}
	if werr := s.store.Write(loc, b); werr != nil {
		s.obs.OnSnapshotFailed(loc, werr)
	}
	return b, nil
}
