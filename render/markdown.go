package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/bjaus/tfmt"
)

func writeMarkdown[T any](buf *tfmt.Text, items []T) error {
	if len(items) == 0 {
		return nil
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return missing(Markdown, "Rower", items[0])
	}
	h, ok := first.(Headed)
	if !ok {
		return missing(Markdown, "Headed", items[0])
	}

	header := h.Header()
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = any(item).(Rower).Row()
	}

	// Columns are at least three wide to hold alignment markers.
	widths := make([]int, len(header))
	for i, col := range header {
		widths[i] = max(3, runewidth.StringWidth(col))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	var aligns []Alignment
	if a, ok := first.(Aligned); ok {
		aligns = a.Alignments()
	}
	aligns = extendAligns(aligns, len(widths))

	markdownRow(buf, header, widths, aligns)
	buf.AppendByte('|')
	for i, width := range widths {
		buf.AppendByte(' ')
		switch aligns[i] {
		case AlignRight:
			buf.CharN('-', width-1)
			buf.AppendByte(':')
		case AlignCenter:
			buf.AppendByte(':')
			buf.CharN('-', width-2)
			buf.AppendByte(':')
		default:
			buf.CharN('-', width)
		}
		buf.AppendString(" |")
	}
	buf.AppendByte('\n')
	for _, row := range rows {
		markdownRow(buf, row, widths, aligns)
	}
	return nil
}

func markdownRow(buf *tfmt.Text, cells []string, widths []int, aligns []Alignment) {
	buf.AppendByte('|')
	for i, width := range widths {
		buf.AppendByte(' ')
		alignCell(buf, cellAt(cells, i), width, aligns[i])
		buf.AppendString(" |")
	}
	buf.AppendByte('\n')
}
