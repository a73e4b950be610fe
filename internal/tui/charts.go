package tui

import (
	"fmt"
	"strings"

	"portfolio-cli/internal/model"
	"portfolio-cli/internal/projects"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline maps each value onto one block glyph, scaled to the series max.
func sparkline(values []int) string {
	maxV := 0
	for _, v := range values {
		if v > maxV {
			maxV = v
		}
	}
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if maxV > 0 && v > 0 {
			idx = (v*len(sparkBlocks) - 1) / maxV
			if idx >= len(sparkBlocks) {
				idx = len(sparkBlocks) - 1
			}
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

type barRow struct {
	Label string
	Value int
}

// hbars renders one labelled horizontal bar per row, the longest bar filling
// width minus the label and value columns.
func hbars(rows []barRow, width int) []string {
	if len(rows) == 0 {
		return nil
	}
	labelW, maxV := 0, 0
	for _, r := range rows {
		if w := xansi.StringWidth(r.Label); w > labelW {
			labelW = w
		}
		if r.Value > maxV {
			maxV = r.Value
		}
	}
	valueW := len(fmt.Sprint(maxV))
	barW := width - labelW - valueW - 2
	if barW < 1 {
		barW = 1
	}

	barStyle := lipgloss.NewStyle().Foreground(colorChartBar)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		n := 0
		if maxV > 0 {
			n = r.Value * barW / maxV
		}
		if r.Value > 0 && n == 0 {
			n = 1
		}
		line := fitWidth(r.Label, labelW) + " " +
			barStyle.Render(strings.Repeat("█", n)) + strings.Repeat(" ", barW-n) + " " +
			fmt.Sprintf("%*d", valueW, r.Value)
		out = append(out, line)
	}
	return out
}

func visitorRows(series []model.VisitorPoint) []barRow {
	rows := make([]barRow, 0, len(series))
	for _, p := range series {
		rows = append(rows, barRow{Label: p.Day, Value: p.Visitors})
	}
	return rows
}

func tagRows(counts []projects.TagCount) []barRow {
	rows := make([]barRow, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, barRow{Label: c.Name, Value: c.Count})
	}
	return rows
}

func visitorValues(series []model.VisitorPoint) []int {
	out := make([]int, 0, len(series))
	for _, p := range series {
		out = append(out, p.Visitors)
	}
	return out
}
