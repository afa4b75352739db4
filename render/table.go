package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/bjaus/tfmt"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// table is the resolved layout of one Table render.
type table struct {
	title   string
	header  []string
	rows    [][]string
	footer  []string
	caption string
	border  BorderStyle
	widths  []int
	aligns  []Alignment
}

func writeTable[T any](buf *tfmt.Text, items []T) error {
	if len(items) == 0 {
		return nil
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return missing(Table, "Rower", items[0])
	}

	t := table{border: BorderRounded}
	t.rows = make([][]string, len(items))
	for i, item := range items {
		t.rows[i] = any(item).(Rower).Row()
	}
	if h, ok := first.(Headed); ok {
		t.header = h.Header()
	}
	if v, ok := first.(Titled); ok {
		t.title = v.Title()
	}
	if b, ok := first.(Bordered); ok {
		t.border = b.Border()
	}
	if a, ok := first.(Aligned); ok {
		t.aligns = a.Alignments()
	}
	if f, ok := first.(Footered); ok {
		t.footer = f.Footer()
	}
	if c, ok := first.(Captioned); ok {
		t.caption = c.Caption()
	}
	if n, ok := first.(Numbered); ok {
		t.number(n.NumberHeader())
	}

	t.measure()
	if tr, ok := first.(Truncated); ok {
		t.truncate(tr.MaxWidths())
	}

	if t.border == BorderNone {
		t.renderPlain(buf)
	} else {
		t.renderBordered(buf, borderSets[t.border])
	}
	if t.caption != "" {
		buf.AppendString(t.caption).AppendByte('\n')
	}
	return nil
}

// number prepends a right-aligned row number column.
func (t *table) number(header string) {
	if len(t.header) > 0 {
		t.header = append([]string{header}, t.header...)
	}
	for i, row := range t.rows {
		t.rows[i] = append([]string{tfmt.Str(i + 1)}, row...)
	}
	if len(t.footer) > 0 {
		t.footer = append([]string{""}, t.footer...)
	}
	t.aligns = append([]Alignment{AlignRight}, t.aligns...)
}

// measure sizes every column to its widest cell in display columns.
func (t *table) measure() {
	n := len(t.header)
	for _, row := range t.rows {
		n = max(n, len(row))
	}
	n = max(n, len(t.footer))

	t.widths = make([]int, n)
	grow := func(cells []string) {
		for i, c := range cells {
			t.widths[i] = max(t.widths[i], runewidth.StringWidth(c))
		}
	}
	grow(t.header)
	for _, row := range t.rows {
		grow(row)
	}
	grow(t.footer)
	t.aligns = extendAligns(t.aligns, n)
}

func (t *table) truncate(limits []int) {
	for i, limit := range limits {
		if i < len(t.widths) && limit > 0 && t.widths[i] > limit {
			t.widths[i] = limit
		}
	}
}

func extendAligns(aligns []Alignment, n int) []Alignment {
	if len(aligns) >= n {
		return aligns[:n]
	}
	out := make([]Alignment, n)
	copy(out, aligns)
	return out
}

func (t *table) renderPlain(buf *tfmt.Text) {
	if len(t.header) > 0 {
		t.plainRow(buf, t.header)
		t.plainRule(buf)
	}
	for _, row := range t.rows {
		t.plainRow(buf, row)
	}
	if len(t.footer) > 0 {
		t.plainRule(buf)
		t.plainRow(buf, t.footer)
	}
}

func (t *table) plainRule(buf *tfmt.Text) {
	for i, width := range t.widths {
		if i > 0 {
			buf.CharN(' ', 2)
		}
		buf.CharN('-', width)
	}
	buf.AppendByte('\n')
}

// plainRow writes cells two spaces apart with trailing blanks trimmed.
func (t *table) plainRow(buf *tfmt.Text, cells []string) {
	start := buf.Len()
	for i, width := range t.widths {
		if i > 0 {
			buf.CharN(' ', 2)
		}
		writeCell(buf, cellAt(cells, i), width, t.aligns[i])
	}
	end := buf.Len()
	for end > start && buf.Byte(end-1) == ' ' {
		end--
	}
	buf.Storage().Resize(end)
	buf.AppendByte('\n')
}

func (t *table) renderBordered(buf *tfmt.Text, bc borderChars) {
	if t.title != "" {
		t.rule(buf, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight)
		buf.AppendString(bc.vertical).AppendByte(' ')
		alignCell(buf, t.title, innerWidth(t.widths)-2, AlignCenter)
		buf.AppendByte(' ').AppendString(bc.vertical).AppendByte('\n')
		t.rule(buf, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee)
	} else {
		t.rule(buf, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight)
	}
	if len(t.header) > 0 {
		t.borderedRow(buf, t.header, bc.vertical)
		t.rule(buf, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
	}
	for _, row := range t.rows {
		t.borderedRow(buf, row, bc.vertical)
	}
	if len(t.footer) > 0 {
		t.rule(buf, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee)
		t.borderedRow(buf, t.footer, bc.vertical)
	}
	t.rule(buf, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// innerWidth is the display width between the outer borders: each cell plus
// one space of padding per side, and one separator between cells.
func innerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func (t *table) rule(buf *tfmt.Text, left, fill, mid, right string) {
	buf.AppendString(left)
	for i, width := range t.widths {
		for range width + 2 {
			buf.AppendString(fill)
		}
		if i < len(t.widths)-1 {
			buf.AppendString(mid)
		}
	}
	buf.AppendString(right).AppendByte('\n')
}

func (t *table) borderedRow(buf *tfmt.Text, cells []string, vert string) {
	buf.AppendString(vert)
	for i, width := range t.widths {
		buf.AppendByte(' ')
		writeCell(buf, cellAt(cells, i), width, t.aligns[i])
		buf.AppendByte(' ')
		if i < len(t.widths)-1 {
			buf.AppendString(vert)
		}
	}
	buf.AppendString(vert).AppendByte('\n')
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

// writeCell truncates s to width display columns, ending in "..." when there
// is room for it, then aligns it.
func writeCell(buf *tfmt.Text, s string, width int, align Alignment) {
	if width > 0 && runewidth.StringWidth(s) > width {
		tail := "..."
		if width <= 3 {
			tail = ""
		}
		s = runewidth.Truncate(s, width, tail)
	}
	alignCell(buf, s, width, align)
}

// alignCell pads s to width display columns. Padding is computed from the
// display width, so wide characters count double.
func alignCell(buf *tfmt.Text, s string, width int, align Alignment) {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		buf.AppendString(s)
		return
	}
	switch align {
	case AlignRight:
		buf.CharN(' ', pad)
		buf.AppendString(s)
	case AlignCenter:
		left := pad / 2
		buf.CharN(' ', left)
		buf.AppendString(s)
		buf.CharN(' ', pad-left)
	default:
		buf.AppendString(s)
		buf.CharN(' ', pad)
	}
}
