package main

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/John-Robertt/seimei/internal/app/harvest"
	"github.com/John-Robertt/seimei/internal/config"
	"github.com/John-Robertt/seimei/internal/domain"
)

var _ harvest.Observer = (*logObserver)(nil)

// logObserver 把 harvest 事件渲染为结构化日志（stderr）。
//
// zap.Logger 本身并发安全，这里不持有可变状态。
type logObserver struct {
	log *zap.Logger
}

func newLogObserver(lg *zap.Logger) *logObserver {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &logObserver{log: lg}
}

func (o *logObserver) OnStart(eff config.EffectiveConfig, source string) {
	fields := []zap.Field{
		zap.String("source", source),
		zap.Int("year_from", eff.YearFrom),
		zap.Int("year_to", eff.YearTo),
		zap.Int("concurrency", eff.Concurrency),
		zap.Duration("timeout", eff.HTTPTimeout),
		zap.String("output", eff.HarvestOutput),
	}
	if eff.ProxyURL != "" {
		fields = append(fields, zap.String("proxy", redactProxy(eff.ProxyURL)))
	}
	if eff.SnapshotDir != "" {
		fields = append(fields, zap.String("snapshot_dir", eff.SnapshotDir))
	}
	o.log.Info("harvest 开始", fields...)
}

func (o *logObserver) OnPageDone(res domain.PageResult) {
	fields := []zap.Field{
		zap.Stringer("loc", res.Location),
		zap.String("url", res.Location.URL),
		zap.Duration("dur", res.Duration.Round(time.Millisecond)),
	}
	switch res.Status {
	case domain.PageStatusOK:
		o.log.Info("页面完成", append(fields, zap.Int("tables", res.Tables), zap.Int("names", len(res.Names)))...)
	case domain.PageStatusEmpty:
		o.log.Warn("页面没有排行榜表格", append(fields, zap.String("code", res.ErrorCode))...)
	default:
		o.log.Warn("页面抓取失败", append(fields, zap.String("code", res.ErrorCode), zap.String("error", res.ErrorMsg))...)
	}
}

func (o *logObserver) OnYearDone(y domain.YearSummary, accumulated int, dur time.Duration) {
	o.log.Info("年份完成",
		zap.Int("year", y.Year),
		zap.Int("pages", y.Pages),
		zap.Int("ok", y.OK),
		zap.Int("empty", y.Empty),
		zap.Int("failed", y.Failed),
		zap.Int("extracted", y.Extracted),
		zap.Int("new", y.New),
		zap.Int("accumulated", accumulated),
		zap.Duration("dur", dur.Round(time.Millisecond)),
	)
}

func (o *logObserver) OnFallback(accumulated int) {
	o.log.Warn("校验后没有合格名字，改为输出未过滤的全部候选", zap.Int("accumulated", accumulated))
}

func (o *logObserver) OnSnapshotFailed(loc domain.Location, err error) {
	o.log.Warn("快照写入失败", zap.Stringer("loc", loc), zap.Error(err))
}

func (o *logObserver) OnDone(r domain.HarvestReport) {
	o.log.Info("harvest 完成",
		zap.Int("pages", r.Summary.Pages),
		zap.Int("failed", r.Summary.Failed),
		zap.Int("accumulated", r.Accumulated),
		zap.Int("valid", r.Valid),
		zap.Bool("fallback", r.Fallback),
		zap.Duration("elapsed", r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond)),
	)
}

// redactProxy 只保留 scheme://host 与是否带认证，避免把密码写进日志。
func redactProxy(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "(unparsable)"
	}
	auth := "off"
	if u.User != nil {
		auth = "on"
	}
	return fmt.Sprintf("%s://%s (auth=%s)", u.Scheme, u.Host, auth)
}
