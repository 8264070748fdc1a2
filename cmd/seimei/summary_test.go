package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/John-Robertt/seimei/internal/domain"
)

func TestRenderSummary(t *testing.T) {
	r := domain.HarvestReport{
		Source:   "benesse",
		YearFrom: 2017,
		YearTo:   2018,
		Years: []domain.YearSummary{
			{Year: 2017, Pages: 5, OK: 5, Extracted: 50, New: 40},
			{Year: 2018, Pages: 10, OK: 9, Failed: 1, Extracted: 90, New: 30},
		},
		Accumulated: 70,
		Valid:       60,
	}
	r.Finalize()

	var buf bytes.Buffer
	renderSummary(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "YEAR")
	assert.Contains(t, out, "2017")
	assert.Contains(t, out, "2018")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "accumulated=70 valid=60")
	assert.NotContains(t, out, "fallback")
}

func TestRenderSummary_Fallback(t *testing.T) {
	r := domain.HarvestReport{Source: "benesse", YearFrom: 2010, YearTo: 2010, Fallback: true, Accumulated: 3}
	r.Finalize()

	var buf bytes.Buffer
	renderSummary(&buf, r)
	assert.Contains(t, buf.String(), "fallback")
}
