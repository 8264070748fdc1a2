// Package benesse 实现「たまひよ 名前ランキング」（st.benesse.ne.jp）的页面规划、抓取与解析。
package benesse

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/John-Robertt/seimei/internal/domain"
	"github.com/John-Robertt/seimei/internal/source"
)

const (
	Name           = "benesse"
	DefaultBaseURL = "https://st.benesse.ne.jp/ninshin/name/"
)

// Provider 实现 source.Source。
//
// BaseURL 为空时使用 DefaultBaseURL；测试可指向 httptest server。
type Provider struct {
	BaseURL string
}

var _ source.Source = Provider{}

func (Provider) Name() string { return Name }

// Fetch 直接请求 loc.URL（一次尝试，超时由 client 控制）。
func (Provider) Fetch(ctx context.Context, loc domain.Location, c *http.Client) ([]byte, error) {
	if strings.TrimSpace(loc.URL) == "" {
		return nil, errors.New("location.URL 不能为空")
	}
	return source.Get(ctx, c, loc.URL)
}

func (p Provider) baseURL() string {
	b := strings.TrimSpace(p.BaseURL)
	if b == "" {
		b = DefaultBaseURL
	}
	if !strings.HasSuffix(b, "/") {
		b += "/"
	}
	return b
}
