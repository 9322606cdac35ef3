// Package render draws a chart and its key as fixed-width ASCII text.
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/knitchart/internal/chart"
	"github.com/specialistvlad/knitchart/internal/stitch"
)

// Chart renders every row of c, padded to the chart width, highest row
// first. Right-side rows carry their number on the right and wrong-side rows
// on the left. A border line precedes every row and follows the last one.
func Chart(c *chart.Chart) (string, error) {
	if c == nil {
		return "", errors.New("cannot render a nil chart")
	}

	cellWidth := columnWidth(c)
	border := borderLine(c.Width()+2, cellWidth)
	gutter := strings.Repeat(" ", cellWidth)

	rows := c.Rows()
	var b strings.Builder
	b.WriteString(border)
	for i := len(rows) - 1; i >= 0; i-- {
		number := rows[i].Number
		padded, err := c.PaddedRow(number, c.Width())
		if err != nil {
			return "", fmt.Errorf("failed to pad row %d: %w", number, err)
		}

		symbols := padded.Symbols()
		cells := make([]string, 0, len(symbols)+2)
		label := pad(strconv.Itoa(number), cellWidth)
		if padded.IsRightSide() {
			cells = append(cells, gutter)
		} else {
			cells = append(cells, label)
		}
		for _, s := range symbols {
			cells = append(cells, pad(s, cellWidth))
		}
		if padded.IsRightSide() {
			cells = append(cells, label)
		} else {
			cells = append(cells, gutter)
		}

		b.WriteString(strings.Join(cells, "|"))
		b.WriteByte('\n')
		b.WriteString(border)
	}
	return b.String(), nil
}

// columnWidth is two more than the longest symbol or row label.
func columnWidth(c *chart.Chart) int {
	longest := utf8.RuneCountInString(stitch.EmptySymbol)
	for _, s := range c.Key().Symbols() {
		if n := utf8.RuneCountInString(s); n > longest {
			longest = n
		}
	}
	if n := len(strconv.Itoa(c.LastRowNumber())); n > longest {
		longest = n
	}
	return longest + 2
}

func borderLine(segments, width int) string {
	parts := make([]string, segments)
	for i := range parts {
		parts[i] = strings.Repeat("-", width)
	}
	return strings.Join(parts, "+") + "\n"
}

// pad grows s to width by adding spaces alternately before and after it,
// starting before.
func pad(s string, width int) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	before := (missing + 1) / 2
	after := missing / 2
	return strings.Repeat(" ", before) + s + strings.Repeat(" ", after)
}
