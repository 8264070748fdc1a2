package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewClient_ProxyDisablesKeepAlive(t *testing.T) {
	c, err := NewClient(Options{ProxyURL: "http://127.0.0.1:8080"})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	tr, ok := c.Transport.(*Transport)
	if !ok {
		t.Fatalf("期望 *Transport，实际 %T", c.Transport)
	}
	if tr.Base.Proxy == nil {
		t.Fatalf("期望启用代理")
	}
	if !tr.Base.DisableKeepAlives {
		t.Fatalf("代理模式应禁用 keep-alive")
	}
	if !tr.DisableKeepAlives {
		t.Fatalf("代理模式应设置 Request.Close=true")
	}
}

func TestNewClient_DefaultsWithoutProxy(t *testing.T) {
	c, err := NewClient(Options{})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	tr := c.Transport.(*Transport)
	if tr.Base.Proxy != nil {
		t.Fatalf("未配置代理时不应设置 Proxy")
	}
	if tr.Base.DisableKeepAlives {
		t.Fatalf("未配置代理时应保留 keep-alive")
	}
	if c.Timeout != DefaultTimeout {
		t.Fatalf("期望超时 %v，实际 %v", DefaultTimeout, c.Timeout)
	}
}

func TestNewClient_CustomTimeout(t *testing.T) {
	c, err := NewClient(Options{Timeout: 3 * time.Second})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	if c.Timeout != 3*time.Second {
		t.Fatalf("期望超时 3s，实际 %v", c.Timeout)
	}
}

func TestNewClient_InvalidProxyURL(t *testing.T) {
	if _, err := NewClient(Options{ProxyURL: "http://[::1"}); err == nil {
		t.Fatalf("非法代理地址应报错")
	}
	if _, err := NewClient(Options{ProxyURL: "127.0.0.1:8080"}); err == nil {
		t.Fatalf("缺少 scheme 的代理地址应报错")
	}
}

func TestTransport_SingleAttemptAndUA(t *testing.T) {
	var hits atomic.Int32
	var ua atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		ua.Store(r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := NewClient(Options{Timeout: time.Second})
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	resp, err := c.Get(srv.URL)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("期望 503，实际 %d", resp.StatusCode)
	}
	if n := hits.Load(); n != 1 {
		t.Fatalf("不应重试：请求次数=%d", n)
	}
	if got := ua.Load().(string); !strings.Contains(got, "Mozilla/5.0") {
		t.Fatalf("期望浏览器 UA，实际 %q", got)
	}
}
