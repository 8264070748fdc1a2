// Package merge 把多个名字表按优先级合并为一张。
//
// 约束：
// - 稳定去重：保留每个规范化文本的首次出现位置，绝不重新排序。
// - 与 harvest 的“集合 + 排序”是两套独立的顺序契约，不得共用实现。
package merge

import (
	"errors"
	"fmt"
	"os"

	"github.com/John-Robertt/seimei/internal/emit"
	"github.com/John-Robertt/seimei/internal/infra/fsx"
	"github.com/John-Robertt/seimei/internal/jsarray"
	"github.com/John-Robertt/seimei/internal/name"
)

// Lists 按参数顺序拼接后稳定去重。规范化后为空的条目丢弃。
// 去重键是规范化文本；输出保留每个键首次出现时的原样条目。
func Lists(lists ...[]string) []string {
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	seen := make(map[string]struct{}, total)
	out := make([]string, 0, total)
	for _, l := range lists {
		for _, s := range l {
			k := name.Normalize(s)
			if k == "" {
				continue
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// Config 是一次 merge 的输入。Inputs 的顺序即优先级（靠前的先占位）。
type Config struct {
	Inputs []string
	Output string
	Ident  string
}

// Result 汇总一次 merge 的结果，供 CLI 输出。
type Result struct {
	Output string
	// Counts 是每个输入读到的条数（与 Inputs 一一对应）。
	Counts []int
	Names  []string
}

// InputError 表示某个输入文件不可用（不存在/不可读/没有数组字面量）。
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("输入文件 %q 不可用：%v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ErrTooFewInputs 表示输入少于两个。
var ErrTooFewInputs = errors.New("merge 至少需要 2 个输入")

// Run 读取全部输入、合并并原子写出。任一输入缺失即整体失败，不写输出。
func Run(cfg Config) (Result, error) {
	if len(cfg.Inputs) < 2 {
		return Result{}, ErrTooFewInputs
	}
	ident := cfg.Ident
	if ident == "" {
		ident = emit.IdentGivenNames
	}
	if !emit.ValidIdent(ident) {
		return Result{}, fmt.Errorf("非法 JS 标识符：%q", ident)
	}

	lists := make([][]string, 0, len(cfg.Inputs))
	counts := make([]int, 0, len(cfg.Inputs))
	for _, p := range cfg.Inputs {
		l, err := ReadList(p)
		if err != nil {
			return Result{}, err
		}
		lists = append(lists, l)
		counts = append(counts, len(l))
	}

	merged := Lists(lists...)
	data := emit.ModuleConst(ident, merged, emit.ModuleOptions{AttachWindow: true, ExportDefault: true})
	if err := fsx.WriteFile(cfg.Output, data); err != nil {
		return Result{}, fmt.Errorf("写入 %q 失败：%w", cfg.Output, err)
	}
	return Result{Output: cfg.Output, Counts: counts, Names: merged}, nil
}

// ReadList 读取 path 中第一个数组字面量的字符串列表。
func ReadList(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	l, err := jsarray.FirstArray(string(b))
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return l, nil
}
