package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/John-Robertt/seimei/internal/app/merge"
)

func newMergeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge",
		Short: "按优先级合并多个名字表，生成 given_names.js",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			res, err := merge.Run(merge.Config{Inputs: a.eff.MergeInputs, Output: a.eff.MergeOutput})
			if err != nil {
				return err
			}
			for i, p := range a.eff.MergeInputs {
				a.log.Info("已读取输入", zap.String("path", p), zap.Int("names", res.Counts[i]))
			}
			a.log.Info("merge 完成", zap.String("output", res.Output), zap.Int("names", len(res.Names)))
			return nil
		},
	}
}
