package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/John-Robertt/seimei/internal/app/harvest"
	"github.com/John-Robertt/seimei/internal/emit"
	"github.com/John-Robertt/seimei/internal/infra/fsx"
	"github.com/John-Robertt/seimei/internal/infra/httpx"
)

func newHarvestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "harvest",
		Short: "抓取排行榜页面，生成 given_names_generated.js",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHarvest(cmd)
		},
	}
}

func (a *app) runHarvest(cmd *cobra.Command) error {
	eff := a.eff

	src, ok := a.reg.Get(eff.Source)
	if !ok {
		return fmt.Errorf("未知 source：%q（可用：%v）", eff.Source, a.reg.Names())
	}
	client, err := httpx.NewClient(httpx.Options{ProxyURL: eff.ProxyURL, Timeout: eff.HTTPTimeout})
	if err != nil {
		return fmt.Errorf("http.proxy_url 无效：%w", err)
	}

	ctx, stop := signalContext(cmd.Context())
	defer stop()

	rr := harvest.Execute(ctx, eff, src, client, newLogObserver(a.log))
	renderSummary(a.stderr, rr)

	// 中断时不覆盖已有产物：半途的结果不完整。
	if err := ctx.Err(); err != nil {
		return errors.New("harvest 已中断，未写出产物")
	}

	data := emit.WindowArray(emit.IdentGivenNameMaster, emit.HarvestHeader(eff.YearFrom, eff.YearTo), rr.Names)
	if err := fsx.WriteFile(eff.HarvestOutput, data); err != nil {
		return fmt.Errorf("写入 %q 失败：%w", eff.HarvestOutput, err)
	}
	a.log.Info("已写出名字表",
		zap.String("path", eff.HarvestOutput),
		zap.Int("names", len(rr.Names)),
		zap.Bool("fallback", rr.Fallback),
	)

	if eff.ReportPath != "" {
		b, err := json.MarshalIndent(rr, "", "  ")
		if err != nil {
			return fmt.Errorf("序列化报告失败：%w", err)
		}
		if err := fsx.WriteFile(eff.ReportPath, append(b, '\n')); err != nil {
			return fmt.Errorf("写入 %q 失败：%w", eff.ReportPath, err)
		}
		a.log.Info("已写出报告", zap.String("path", eff.ReportPath))
	}
	return nil
}
