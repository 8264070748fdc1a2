package domain

import "sort"

// NameSet 是按首次插入顺序保存的去重集合（键为规范化后的名字）。
//
// 插入顺序只用于内部追溯，不承诺任何语义；harvest 的对外输出一律走 Sorted。
// 调用方负责在 Add 之前做规范化，NameSet 本身不理解“名字”。
type NameSet struct {
	index map[string]struct{}
	order []string
}

func NewNameSet() *NameSet {
	return &NameSet{index: make(map[string]struct{}, 1024)}
}

// Add 插入 s；空串忽略。返回值表示是否为新元素。
func (s *NameSet) Add(v string) bool {
	if v == "" {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]struct{}, 1024)
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

func (s *NameSet) Len() int { return len(s.order) }

// Names 返回插入顺序的副本。
func (s *NameSet) Names() []string {
	return append([]string(nil), s.order...)
}

// Sorted 返回按字符串字典序（UTF-8 字节序 == 码点序）排序的副本。
func (s *NameSet) Sorted() []string {
	out := s.Names()
	sort.Strings(out)
	return out
}
