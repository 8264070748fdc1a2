package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html/charset"
)

// maxBodyBytes 限制单页读取量；排行榜页面远小于该值。
const maxBodyBytes = 8 << 20

// Get 发起一次 GET，并把 body 按响应声明的编码转换为 UTF-8。
//
// 非 2xx 返回 *HTTPStatusError；2xx 的空 body 原样返回。
func Get(ctx context.Context, c *http.Client, u string) ([]byte, error) {
	if c == nil {
		return nil, errors.New("http client 不能为空")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// 丢弃 body，便于连接复用。
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &HTTPStatusError{
			URL:        u,
			StatusCode: resp.StatusCode,
			Location:   strings.TrimSpace(resp.Header.Get("Location")),
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	// 空 body 交给 Extract 判定为“没有排行榜表格”，不算抓取失败。
	if len(raw) == 0 {
		return raw, nil
	}

	// 日文站点偶有 Shift_JIS/EUC-JP；charset 会综合 Content-Type 与 <meta> 判断。
	r, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return raw, nil
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return b, nil
}
