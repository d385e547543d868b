package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/etnz/montecarlo"
	md "github.com/nao1215/markdown"
)

// Bands renders the percentile bands as a year-by-year markdown table.
// The bands are monthly; one row per year keeps the table readable.
func Bands(bands map[int][]float64, cfg montecarlo.Config) string {
	levels := make([]int, 0, len(bands))
	for l := range bands {
		levels = append(levels, l)
	}
	sort.Ints(levels)

	header := []string{"Year"}
	for _, l := range levels {
		header = append(header, fmt.Sprintf("P%d", l))
	}

	rows := make([][]string, 0, cfg.Years+1)
	for y := 0; y <= cfg.Years; y++ {
		row := []string{fmt.Sprintf("%d", y)}
		for _, l := range levels {
			row = append(row, usd(bands[l][12*y]))
		}
		rows = append(rows, row)
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Percentile Bands")
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}
