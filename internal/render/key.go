package render

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/specialistvlad/knitchart/internal/chart"
)

var keyHeader = []string{"Symbol", "RS", "WS"}

// Key renders the chart's key as a table of symbol, right-side meaning and
// wrong-side meaning, one line per symbol in the order the chart uses them.
// Column widths follow the content, not the chart.
func Key(c *chart.Chart) (string, error) {
	if c == nil || c.Key() == nil {
		return "", errors.New("cannot render the key of a nil chart")
	}

	table := [][]string{keyHeader}
	for _, e := range c.Key().Entries() {
		table = append(table, []string{e.Symbol, e.RS, e.WS})
	}

	widths := make([]int, len(keyHeader))
	for _, line := range table {
		for col, text := range line {
			if n := utf8.RuneCountInString(text) + 2; n > widths[col] {
				widths[col] = n
			}
		}
	}

	border := keyBorder(widths)
	var b strings.Builder
	b.WriteString(border)
	for _, line := range table {
		b.WriteByte('|')
		for col, text := range line {
			b.WriteString(pad(text, widths[col]))
			b.WriteByte('|')
		}
		b.WriteByte('\n')
		b.WriteString(border)
	}
	return b.String(), nil
}

func keyBorder(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w))
		b.WriteByte('+')
	}
	b.WriteByte('\n')
	return b.String()
}
