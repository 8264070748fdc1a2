package benesse

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/John-Robertt/seimei/internal/domain"
)

const rankingTableSelector = "table.tbl_ranking"

// Extract 从排行榜页面抽取原始候选名。
//
// 单元格形如「颯太<br><span class="yomi">そうた</span>」：
// 只取第二个 <td> 中第一个 <br> 之前的文本，<br> 之后的读音/注释绝不能混进来。
func (Provider) Extract(b []byte) (domain.Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return domain.Page{}, err
	}

	tables := doc.Find(rankingTableSelector)
	page := domain.Page{
		Tables: tables.Length(),
		Names:  make([]string, 0, 64),
	}

	tables.Each(func(_ int, t *goquery.Selection) {
		t.Find("tbody > tr").Each(func(_ int, tr *goquery.Selection) {
			tds := tr.ChildrenFiltered("td")
			if tds.Length() < 2 {
				return
			}
			cell := tds.Get(1)
			if n := textBeforeBreak(cell); n != "" {
				page.Names = append(page.Names, n)
			}
		})
	})
	return page, nil
}

// textBeforeBreak 按文档顺序收集 n 的后代文本，遇到第一个 <br>（任意深度）即停止。
// 只收集文本节点，标签天然被剥离。
func textBeforeBreak(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node) bool
	walk = func(p *html.Node) bool {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				sb.WriteString(c.Data)
			case html.ElementNode:
				if c.DataAtom == atom.Br {
					return false
				}
				if c.DataAtom == atom.Script || c.DataAtom == atom.Style {
					continue
				}
				if !walk(c) {
					return false
				}
			}
		}
		return true
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
