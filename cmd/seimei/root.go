package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/John-Robertt/seimei/internal/config"
	"github.com/John-Robertt/seimei/internal/infra/logx"
	"github.com/John-Robertt/seimei/internal/source"
	"github.com/John-Robertt/seimei/internal/source/benesse"
)

// app 持有一次 CLI 调用的全部依赖；PersistentPreRunE 负责填充 eff/log/reg。
type app struct {
	stdout io.Writer
	stderr io.Writer

	// cwd 为空时使用 os.Getwd（测试会显式指定）。
	cwd     string
	cfgFile string

	eff config.EffectiveConfig
	log *zap.Logger
	reg source.Registry
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "seimei",
		Short:         "日本人名字表的抓取、整理与合并",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Name())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "",
		"配置文件（yaml/json/toml；默认在当前目录查找 seimei.yaml|yml|json|toml）")

	root.AddCommand(newHarvestCmd(a), newCleanCmd(a), newMergeCmd(a))
	return root
}

func (a *app) setup(cmdName string) error {
	cwd := a.cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("读取当前目录失败：%w", err)
		}
		cwd = wd
	}

	if err := config.LoadEnvFiles(cwd); err != nil {
		return err
	}
	eff, err := config.LoadEffective(cwd, a.cfgFile)
	if err != nil {
		return err
	}

	lg, err := logx.New(eff.LogLevel, eff.LogFormat, a.stderr)
	if err != nil {
		return &config.Error{Code: config.ErrCodeInvalid, Path: eff.ConfigFile, Err: err}
	}

	reg, err := source.NewRegistry(benesse.Provider{BaseURL: eff.BaseURL})
	if err != nil {
		return err
	}

	a.eff = eff
	a.reg = reg
	a.log = lg.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("cmd", cmdName),
	)
	if eff.ConfigFile != "" {
		a.log.Debug("已读取配置文件", zap.String("path", eff.ConfigFile))
	}
	return nil
}

// signalContext 在收到 Ctrl-C 时取消 parent。
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt)
}
