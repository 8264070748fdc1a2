// Package emit 把名字列表渲染成浏览器端直接加载的 JS 表文件。
package emit

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	IdentGivenNameMaster = "GIVEN_NAME_MASTER"
	IdentGivenNames      = "GIVEN_NAMES"
)

var identRE = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// ValidIdent 判断 s 是否可作为 JS 全局标识符。
func ValidIdent(s string) bool { return identRE.MatchString(s) }

// Quote 返回 JS 双引号字符串字面量（只转义 '\' 与 '"'）。
func Quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// HarvestHeader 是 harvest 产物的首行注释内容。
func HarvestHeader(from, to int) string {
	return fmt.Sprintf("自動生成：たまひよ名前ランキング（%d-%d）", from, to)
}

// WindowArray 渲染为：
//
//	// <header>
//	window.<ident> = [
//	  "名",
//	];
func WindowArray(ident, header string, names []string) []byte {
	var b strings.Builder
	b.Grow(64 + len(names)*16)
	if header != "" {
		b.WriteString("// ")
		b.WriteString(header)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "window.%s = [\n", ident)
	writeItems(&b, names)
	b.WriteString("];\n")
	return []byte(b.String())
}

// ModuleOptions 控制 ModuleConst 的附加输出。
type ModuleOptions struct {
	// AttachWindow 追加 `if (typeof window !== "undefined") { window.<ident> = <ident>; }`。
	AttachWindow bool
	// ExportDefault 追加 `export default <ident>;`。
	ExportDefault bool
}

// ModuleConst 渲染为 `const <ident> = [ ... ];`，再按 opts 追加挂载与默认导出。
func ModuleConst(ident string, names []string, opts ModuleOptions) []byte {
	var b strings.Builder
	b.Grow(128 + len(names)*16)
	fmt.Fprintf(&b, "const %s = [\n", ident)
	writeItems(&b, names)
	b.WriteString("];\n")

	if opts.AttachWindow {
		b.WriteString("\nif (typeof window !== \"undefined\") {\n")
		fmt.Fprintf(&b, "  window.%s = %s;\n", ident, ident)
		b.WriteString("}\n")
	}
	if opts.ExportDefault {
		fmt.Fprintf(&b, "\nexport default %s;\n", ident)
	}
	return []byte(b.String())
}

func writeItems(b *strings.Builder, names []string) {
	for _, n := range names {
		b.WriteString("  ")
		b.WriteString(Quote(n))
		b.WriteString(",\n")
	}
}
