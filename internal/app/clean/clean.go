// Package clean 整理手工维护的名字表：抽取全部字符串、去首尾空白、稳定去重后重写。
package clean

import (
	"fmt"
	"os"
	"strings"

	"github.com/John-Robertt/seimei/internal/app/merge"
	"github.com/John-Robertt/seimei/internal/emit"
	"github.com/John-Robertt/seimei/internal/infra/fsx"
	"github.com/John-Robertt/seimei/internal/jsarray"
)

type Config struct {
	Input  string
	Output string
	Ident  string
}

type Result struct {
	Output string
	// Read 是输入中抽到的非空字符串条数（去重前）。
	Read  int
	Names []string
}

// InputError 表示输入文件不可用。
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("输入文件 %q 不可用：%v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Run 读取 cfg.Input，整理后写入 cfg.Output。
// 整个文件中的双引号字符串都会被收集，不限于第一个数组。
func Run(cfg Config) (Result, error) {
	ident := cfg.Ident
	if ident == "" {
		ident = emit.IdentGivenNameMaster
	}
	if !emit.ValidIdent(ident) {
		return Result{}, fmt.Errorf("非法 JS 标识符：%q", ident)
	}

	b, err := os.ReadFile(cfg.Input)
	if err != nil {
		return Result{}, &InputError{Path: cfg.Input, Err: err}
	}

	raw := jsarray.QuotedStrings(string(b))
	trimmed := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			trimmed = append(trimmed, s)
		}
	}
	names := merge.Lists(trimmed)

	data := emit.ModuleConst(ident, names, emit.ModuleOptions{ExportDefault: true})
	if err := fsx.WriteFile(cfg.Output, data); err != nil {
		return Result{}, fmt.Errorf("写入 %q 失败：%w", cfg.Output, err)
	}
	return Result{Output: cfg.Output, Read: len(trimmed), Names: names}, nil
}
