package source

import (
	"context"
	"net/http"

	"github.com/John-Robertt/seimei/internal/domain"
)

// Source 把“站点变化”限制在 source 包内部；harvest 只依赖统一接口。
//
// 约束：
// - Plan 必须是纯函数：相同 year => 相同 Location 序列
// - Fetch 只做一次请求：不缓存、不重试、不限速
// - Extract 必须是纯函数：相同 html => 相同结果；找不到表格不是错误
type Source interface {
	Name() string
	Plan(year int) []domain.Location
	Fetch(ctx context.Context, loc domain.Location, c *http.Client) ([]byte, error)
	Extract(html []byte) (domain.Page, error)
}
