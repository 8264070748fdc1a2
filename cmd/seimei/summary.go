package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/John-Robertt/seimei/internal/domain"
)

// renderSummary 输出按年份的统计表（stderr）。
func renderSummary(w io.Writer, r domain.HarvestReport) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Year", "Pages", "OK", "Empty", "Failed", "Extracted", "New"})
	for _, y := range r.Years {
		t.AppendRow(table.Row{y.Year, y.Pages, y.OK, y.Empty, y.Failed, y.Extracted, y.New})
	}
	t.AppendFooter(table.Row{"Total", r.Summary.Pages, r.Summary.OK, r.Summary.Empty, r.Summary.Failed, "", r.Accumulated})

	caption := fmt.Sprintf("%s %d-%d: accumulated=%d valid=%d", r.Source, r.YearFrom, r.YearTo, r.Accumulated, r.Valid)
	if r.Fallback {
		caption += " (fallback: unfiltered)"
	}
	t.SetCaption(caption)
	t.Render()
}
