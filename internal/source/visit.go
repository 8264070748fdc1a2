package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/John-Robertt/seimei/internal/domain"
)

// Error 是 source 阶段的可追溯错误（只出现在 PageResult.ErrorMsg 中）。
type Error struct {
	Source string
	Stage  string // "fetch" 或 "parse"
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("source=%s stage=%s: %v", e.Source, e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Visit 抓取并解析单个 Location。
//
// 约束：永不返回错误，失败只体现在 PageResult 中（fetch_failed/parse_failed），
// 调用方据此计数并继续下一页；不做任何重试。
func Visit(ctx context.Context, src Source, loc domain.Location, c *http.Client) domain.PageResult {
	started := time.Now()
	res := domain.PageResult{Location: loc, Names: []string{}}

	if err := ctx.Err(); err != nil {
		res.Status = domain.PageStatusFailed
		res.ErrorCode = domain.ErrCodeCanceled
		res.ErrorMsg = err.Error()
		res.Duration = time.Since(started)
		return res
	}

	html, err := src.Fetch(ctx, loc, c)
	if err != nil {
		res.Status = domain.PageStatusFailed
		res.ErrorCode = domain.ErrCodeFetchFailed
		if errors.Is(err, context.Canceled) {
			res.ErrorCode = domain.ErrCodeCanceled
		}
		res.ErrorMsg = (&Error{Source: src.Name(), Stage: "fetch", Err: err}).Error()
		res.Duration = time.Since(started)
		return res
	}

	page, err := src.Extract(html)
	if err != nil {
		res.Status = domain.PageStatusFailed
		res.ErrorCode = domain.ErrCodeParseFailed
		res.ErrorMsg = (&Error{Source: src.Name(), Stage: "parse", Err: err}).Error()
		res.Duration = time.Since(started)
		return res
	}

	res.Tables = page.Tables
	if page.Tables == 0 {
		res.Status = domain.PageStatusEmpty
		res.ErrorCode = domain.ErrCodeNoTable
		res.Duration = time.Since(started)
		return res
	}
	res.Status = domain.PageStatusOK
	if len(page.Names) > 0 {
		res.Names = append(res.Names, page.Names...)
	}
	res.Duration = time.Since(started)
	return res
}
