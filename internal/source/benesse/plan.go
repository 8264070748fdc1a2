package benesse

import (
	"fmt"

	"github.com/John-Robertt/seimei/internal/domain"
)

// 站点 URL 体系按年份分三段：
// - <=2017：不分性别，<base><year>/name-ranking/
// - 2018..2024：分男女，<base><year>/<gender>/name-ranking/
// - >2024：当年榜单，不带年份段，<base><gender>/name-ranking/
const (
	LastUnisexYear   = 2017
	LastArchivedYear = 2024
)

// pageSuffixes 与页码一一对应：第 1 页无后缀。
var pageSuffixes = []string{"", "?page=2", "?page=3", "?page=4", "?page=5"}

var genders = []string{domain.GenderBoy, domain.GenderGirl}

// Plan 枚举 year 需要抓取的全部页面，顺序稳定。
// 任何 >2024 的年份（包括很远的未来）都落到“当年榜单”分支。
func (p Provider) Plan(year int) []domain.Location {
	base := p.baseURL()

	switch {
	case year <= LastUnisexYear:
		return expand(year, "", fmt.Sprintf("%s%d/name-ranking/", base, year))
	case year <= LastArchivedYear:
		out := make([]domain.Location, 0, len(genders)*len(pageSuffixes))
		for _, g := range genders {
			out = append(out, expand(year, g, fmt.Sprintf("%s%d/%s/name-ranking/", base, year, g))...)
		}
		return out
	default:
		out := make([]domain.Location, 0, len(genders)*len(pageSuffixes))
		for _, g := range genders {
			out = append(out, expand(year, g, fmt.Sprintf("%s%s/name-ranking/", base, g))...)
		}
		return out
	}
}

func expand(year int, gender, pageBase string) []domain.Location {
	out := make([]domain.Location, 0, len(pageSuffixes))
	for i, suffix := range pageSuffixes {
		out = append(out, domain.Location{
			Year:   year,
			Gender: gender,
			Page:   i + 1,
			URL:    pageBase + suffix,
		})
	}
	return out
}
