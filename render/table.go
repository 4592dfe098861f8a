package render

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/basins/analysis"
)

// Table writes a summary table followed by one row per basin, largest first.
func Table(w io.Writer, rep *analysis.Report) error {
	if rep == nil {
		return ErrNilReport
	}

	summary := table.NewWriter()
	summary.SetStyle(table.StyleLight)
	summary.SetTitle("Terrain analysis")
	summary.AppendRows([]table.Row{
		{"Map", fmt.Sprintf("%d×%d (%s cells)", rep.Rows, rep.Cols, humanize.Comma(int64(rep.Rows*rep.Cols)))},
		{"Low points", humanize.Comma(int64(len(rep.LowPoints)))},
		{"Risk level sum", humanize.Comma(int64(rep.RiskLevelSum))},
		{"Basins", humanize.Comma(int64(len(rep.Basins)))},
		{fmt.Sprintf("Top %d sizes", rep.TopN), joinInts(head(rep.Sizes, rep.TopN))},
		{fmt.Sprintf("Top %d product", rep.TopN), humanize.Comma(int64(rep.TopProduct))},
		{"Mean / median size", fmt.Sprintf("%.2f / %.1f", rep.Summary.Mean, rep.Summary.Median)},
		{"Size std. dev.", fmt.Sprintf("%.2f", rep.Summary.StdDev)},
	})
	if len(rep.Overlaps) > 0 {
		summary.AppendRow(table.Row{"Overlapping pairs", len(rep.Overlaps)})
	}
	if _, err := fmt.Fprintln(w, summary.Render()); err != nil {
		return err
	}
	if len(rep.Basins) == 0 {
		return nil
	}

	order := make([]int, len(rep.Basins))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return rep.Basins[b].Size() - rep.Basins[a].Size()
	})

	detail := table.NewWriter()
	detail.SetStyle(table.StyleLight)
	detail.AppendHeader(table.Row{"#", "Low point", "Size", "Share"})
	total := rep.Summary.Total
	for rankNo, bi := range order {
		b := rep.Basins[bi]
		share := 0.0
		if total > 0 {
			share = 100 * float64(b.Size()) / float64(total)
		}
		detail.AppendRow(table.Row{rankNo + 1, b.Origin.String(), humanize.Comma(int64(b.Size())), fmt.Sprintf("%.1f%%", share)})
	}
	detail.AppendFooter(table.Row{"", "Total", humanize.Comma(int64(total)), ""})
	_, err := fmt.Fprintln(w, detail.Render())

	return err
}

func head(xs []int, n int) []int {
	if n < len(xs) {
		return xs[:n]
	}
	return xs
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = humanize.Comma(int64(x))
	}
	return strings.Join(parts, " × ")
}
