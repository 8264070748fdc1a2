// Package jsarray 从生成的 JS 名字表中读回字符串列表。
//
// 只认双引号字符串；这是 emit 包写出的格式，也是手工维护表的约定格式。
package jsarray

import (
	"errors"
	"strings"
)

var (
	// ErrNoArray 表示文本中没有完整的 [ ... ] 数组字面量。
	ErrNoArray = errors.New("未找到数组字面量")
)

// FirstArray 返回第一个数组字面量中的全部双引号字符串（按出现顺序，空串跳过）。
// 第一对方括号之外的内容一律忽略；字符串内的 ']' 不会提前结束数组。
func FirstArray(text string) ([]string, error) {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return nil, ErrNoArray
	}
	out, closed := scan(text[start+1:], true)
	if !closed {
		return nil, ErrNoArray
	}
	return out, nil
}

// QuotedStrings 返回整个文本中的全部双引号字符串（按出现顺序，空串跳过）。
func QuotedStrings(text string) []string {
	out, _ := scan(text, false)
	return out
}

// scan 逐字节扫描 s。stopAtBracket=true 时，遇到字符串外的 ']' 即结束并返回 closed=true。
// 未闭合的字符串被丢弃。
func scan(s string, stopAtBracket bool) (out []string, closed bool) {
	out = make([]string, 0, 256)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ']':
			if stopAtBracket {
				return out, true
			}
		case '"':
			v, next, ok := readString(s, i+1)
			if !ok {
				return out, false
			}
			if v != "" {
				out = append(out, v)
			}
			i = next
		}
	}
	return out, false
}

// readString 从 s[i:] 读取到下一个未转义的 '"'，返回内容与结束引号的下标。
func readString(s string, i int) (string, int, bool) {
	var sb strings.Builder
	for ; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			return sb.String(), i, true
		case '\\':
			if i+1 >= len(s) {
				return "", len(s), false
			}
			i++
			switch s[i] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(s[i])
			}
		case '\n':
			// JS 字符串不能跨行：视为未闭合。
			return "", i, false
		default:
			sb.WriteByte(c)
		}
	}
	return "", len(s), false
}
