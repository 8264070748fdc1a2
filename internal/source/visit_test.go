package source

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/John-Robertt/seimei/internal/domain"
)

type stubSource struct {
	name string

	fetchErr   error
	extractErr error
	page       domain.Page

	fetchCalls   int
	extractCalls int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Plan(year int) []domain.Location {
	return []domain.Location{{Year: year, Page: 1, URL: "https://example.test/" + s.name}}
}

func (s *stubSource) Fetch(ctx context.Context, loc domain.Location, c *http.Client) ([]byte, error) {
	s.fetchCalls++
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return []byte("<html/>"), nil
}

func (s *stubSource) Extract(html []byte) (domain.Page, error) {
	s.extractCalls++
	if s.extractErr != nil {
		return domain.Page{}, s.extractErr
	}
	return s.page, nil
}

func TestVisit_OK(t *testing.T) {
	src := &stubSource{name: "stub", page: domain.Page{Tables: 1, Names: []string{"颯太", "蓮"}}}
	loc := src.Plan(2020)[0]

	res := Visit(context.Background(), src, loc, nil)
	if res.Status != domain.PageStatusOK || res.ErrorCode != "" {
		t.Fatalf("期望 ok，实际 status=%q code=%q", res.Status, res.ErrorCode)
	}
	if want := []string{"颯太", "蓮"}; !reflect.DeepEqual(res.Names, want) {
		t.Fatalf("期望 %v，实际 %v", want, res.Names)
	}
	if res.Location != loc {
		t.Fatalf("期望 location=%+v，实际=%+v", loc, res.Location)
	}
}

func TestVisit_FetchFailureIsolated(t *testing.T) {
	src := &stubSource{name: "stub", fetchErr: &HTTPStatusError{URL: "u", StatusCode: 503}}

	res := Visit(context.Background(), src, src.Plan(2020)[0], nil)
	if res.Status != domain.PageStatusFailed || res.ErrorCode != domain.ErrCodeFetchFailed {
		t.Fatalf("期望 failed/%s，实际 %q/%q", domain.ErrCodeFetchFailed, res.Status, res.ErrorCode)
	}
	for _, want := range []string{"HTTP 503", "stage=fetch"} {
		if !strings.Contains(res.ErrorMsg, want) {
			t.Fatalf("error_msg 缺少 %q：%q", want, res.ErrorMsg)
		}
	}
	if res.Names == nil || len(res.Names) != 0 {
		t.Fatalf("失败页 names 应为空切片，实际 %#v", res.Names)
	}
	if src.extractCalls != 0 {
		t.Fatalf("fetch 失败后不应再解析")
	}
}

func TestVisit_ParseFailure(t *testing.T) {
	src := &stubSource{name: "stub", extractErr: errors.New("bad html")}

	res := Visit(context.Background(), src, src.Plan(2020)[0], nil)
	if res.Status != domain.PageStatusFailed || res.ErrorCode != domain.ErrCodeParseFailed {
		t.Fatalf("期望 failed/%s，实际 %q/%q", domain.ErrCodeParseFailed, res.Status, res.ErrorCode)
	}
}

func TestVisit_NoTableIsEmptyNotFailure(t *testing.T) {
	src := &stubSource{name: "stub", page: domain.Page{Tables: 0}}

	res := Visit(context.Background(), src, src.Plan(2020)[0], nil)
	if res.Status != domain.PageStatusEmpty || res.ErrorCode != domain.ErrCodeNoTable {
		t.Fatalf("期望 empty/%s，实际 %q/%q", domain.ErrCodeNoTable, res.Status, res.ErrorCode)
	}
	if res.ErrorMsg != "" {
		t.Fatalf("no_table 不应带 error_msg：%q", res.ErrorMsg)
	}
}

func TestVisit_CanceledContextSkipsFetch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := &stubSource{name: "stub"}
	res := Visit(ctx, src, src.Plan(2020)[0], nil)
	if res.Status != domain.PageStatusFailed || res.ErrorCode != domain.ErrCodeCanceled {
		t.Fatalf("期望 failed/%s，实际 %q/%q", domain.ErrCodeCanceled, res.Status, res.ErrorCode)
	}
	if src.fetchCalls != 0 {
		t.Fatalf("已取消时不应发起请求：fetchCalls=%d", src.fetchCalls)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := &HTTPStatusError{StatusCode: 404}
	err := &Error{Source: "stub", Stage: "fetch", Err: inner}

	var hs *HTTPStatusError
	if !errors.As(err, &hs) {
		t.Fatalf("期望可 errors.As 到 *HTTPStatusError")
	}
	if hs.StatusCode != 404 {
		t.Fatalf("期望 404，实际 %d", hs.StatusCode)
	}
}
