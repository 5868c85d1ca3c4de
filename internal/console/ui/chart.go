package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/acordos/pkg/format"
)

const ChartWidth = 40

type Bar struct {
	Label string
	Value decimal.Decimal
}

type BarGroup struct {
	Title string
	Bars  []Bar
}

// BarLength scales value against max on a width wide axis. Any positive
// value gets at least one cell.
func BarLength(value, max decimal.Decimal, width int) int {
	if !value.IsPositive() || !max.IsPositive() {
		return 0
	}
	n := int(value.Div(max).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	if n < 1 {
		return 1
	}
	if n > width {
		return width
	}
	return n
}

// Chart draws horizontal bars grouped by title, all on one scale.
func (t *Terminal) Chart(groups []BarGroup) error {
	max := decimal.Zero
	for _, g := range groups {
		for _, b := range g.Bars {
			if b.Value.GreaterThan(max) {
				max = b.Value
			}
		}
	}

	tw := tabwriter.NewWriter(t.out, 0, 0, 1, ' ', 0)
	for _, g := range groups {
		fmt.Fprintln(tw, g.Title)
		for _, b := range g.Bars {
			bar := strings.Repeat("#", BarLength(b.Value, max, ChartWidth))
			fmt.Fprintf(tw, "  %s\t|%s\t%s\n", b.Label, bar, format.BRLDecimal(b.Value))
		}
	}
	return tw.Flush()
}
