package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/John-Robertt/seimei/internal/app/clean"
)

func newCleanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "整理手工维护的 given_names.js（去空白、稳定去重）",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			res, err := clean.Run(clean.Config{Input: a.eff.CleanInput, Output: a.eff.CleanOutput})
			if err != nil {
				return err
			}
			a.log.Info("clean 完成",
				zap.String("input", a.eff.CleanInput),
				zap.String("output", res.Output),
				zap.Int("read", res.Read),
				zap.Int("names", len(res.Names)),
			)
			return nil
		},
	}
}
