// Package name 判定一个候选字符串是否可作为“名”（given name）收录。
package name

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinRunes = 1
	MaxRunes = 4
)

// CJK Unified Ideographs 基本区（闭区间）。
// 不含 U+3005「々」和扩展区：宁可误杀，由 harvest 的 fallback 兜底。
const (
	ideographFirst = 0x4E00
	ideographLast  = 0x9FFF
)

// Normalize 删除所有空白字符（含全角空格），得到候选的身份键。
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// IsValid 规则（按顺序）：
// 1) Normalize 后为空 => false
// 2) 字符数不在 [1,4] => false
// 3) 任一字符不在 U+4E00..U+9FFF => false（纯假名名字会被排除）
func IsValid(s string) bool {
	s = Normalize(s)
	if s == "" {
		return false
	}
	n := utf8.RuneCountInString(s)
	if n < MinRunes || n > MaxRunes {
		return false
	}
	for _, r := range s {
		if !IsIdeograph(r) {
			return false
		}
	}
	return true
}

func IsIdeograph(r rune) bool { return r >= ideographFirst && r <= ideographLast }
