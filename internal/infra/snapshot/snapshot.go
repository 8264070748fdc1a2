// Package snapshot 把抓到的原始 HTML 落盘，供排查解析问题时人工查看。
//
// 约束：
// - 只写不读：harvest 永远不回读快照，每次运行都是完整重抓
// - 同一 Location 重复写入时整体覆盖（原子替换）
package snapshot

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/John-Robertt/seimei/internal/domain"
	"github.com/John-Robertt/seimei/internal/infra/fsx"
)

// Store 管理 <Root>/<year>/<gender|all>/page-<n>.html。
// Root 为空表示禁用，Write 直接返回 nil。
type Store struct {
	Root string
}

func New(root string) Store {
	root = strings.TrimSpace(root)
	if root == "" {
		return Store{}
	}
	return Store{Root: filepath.Clean(root)}
}

func (s Store) Enabled() bool { return s.Root != "" }

// Path 返回 loc 对应的快照路径。
func (s Store) Path(loc domain.Location) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("snapshot 未启用")
	}
	dir, name, err := s.split(loc)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// Write 原子写入 loc 的 HTML。
func (s Store) Write(loc domain.Location, html []byte) error {
	if !s.Enabled() {
		return nil
	}
	path, err := s.Path(loc)
	if err != nil {
		return err
	}
	return fsx.WriteFile(path, html)
}

var genderRE = regexp.MustCompile(`^[a-z]+$`)

func (s Store) split(loc domain.Location) (dir, name string, err error) {
	if loc.Year <= 0 {
		return "", "", fmt.Errorf("非法 year：%d", loc.Year)
	}
	if loc.Page <= 0 {
		return "", "", fmt.Errorf("非法 page：%d", loc.Page)
	}
	g := strings.ToLower(strings.TrimSpace(loc.Gender))
	if g == "" {
		g = "all"
	}
	// 最小约束：避免路径穿越；gender 本身是枚举（boy/girl）。
	if !genderRE.MatchString(g) {
		return "", "", fmt.Errorf("非法 gender：%q", loc.Gender)
	}
	dir = filepath.Join(s.Root, strconv.Itoa(loc.Year), g)
	return dir, "page-" + strconv.Itoa(loc.Page) + ".html", nil
}
