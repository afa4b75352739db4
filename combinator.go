package tfmt

import (
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

// LeftPad writes Value left-aligned in a field of Width bytes.
type LeftPad[T any] struct {
	Value T
	Width int
	Fill  byte
}

// Left pads v with trailing spaces up to width bytes.
func Left[T any](v T, width int) LeftPad[T] { return LeftPad[T]{Value: v, Width: width, Fill: ' '} }

func (l LeftPad[T]) FormatText(w Writer) {
	start := w.Len()
	w.Format(l.Value)
	if n := w.Len() - start; n < l.Width {
		w.CharN(l.Fill, l.Width-n)
	}
}

// RightPad writes Value right-aligned in a field of Width bytes.
type RightPad[T any] struct {
	Value T
	Width int
	Fill  byte
}

// Right pads v with leading spaces up to width bytes.
func Right[T any](v T, width int) RightPad[T] { return RightPad[T]{Value: v, Width: width, Fill: ' '} }

func (r RightPad[T]) FormatText(w Writer) {
	start := w.Len()
	w.Format(r.Value)
	padFront(w, start, r.Width, r.Fill)
}

// ZeroPad writes an integer right-aligned in Width bytes, filling with '0'.
// A minus sign stays in front of the zeros.
type ZeroPad[T constraints.Integer] struct {
	Value T
	Width int
}

// Fixed writes v zero-padded to width bytes: Fixed(12, 4) gives "0012".
func Fixed[T constraints.Integer](v T, width int) ZeroPad[T] { return ZeroPad[T]{Value: v, Width: width} }

func (z ZeroPad[T]) FormatText(w Writer) {
	start := w.Len()
	w.Format(z.Value)
	width := z.Width
	if z.Value < 0 && w.Len() > start {
		start++
		width--
	}
	padFront(w, start, width, '0')
}

// padFront right-aligns the bytes written since start within width by
// appending fill and shifting the value forward in place.
func padFront(w Writer, start, width int, fill byte) {
	end := w.Len()
	n := end - start
	if n >= width {
		return
	}
	count := width - n
	w.CharN(fill, count)
	if w.Len() != end+count {
		return
	}
	alignRight(w.Bytes(), start, end, count, fill)
}

// alignRight moves b[start:end] forward by count bytes, walking from the last
// byte to the first, then fills b[start:start+count]. b must extend to at
// least end+count.
func alignRight(b []byte, start, end, count int, fill byte) {
	for i := end - 1; i >= start; i-- {
		b[i+count] = b[i]
	}
	for i := start; i < start+count; i++ {
		b[i] = fill
	}
}

// Precision writes a float with a fixed number of decimals.
type Precision[T constraints.Float] struct {
	Value  T
	Digits int
}

// Precised writes v with exactly digits decimals: Precised(1.0, 3) gives
// "1.000". Output longer than the conversion slot is dropped.
func Precised[T constraints.Float](v T, digits int) Precision[T] {
	return Precision[T]{Value: v, Digits: digits}
}

func (p Precision[T]) FormatText(w Writer) {
	if p.Digits >= floatRoom {
		return
	}
	var tmp [floatRoom]byte
	out := appendFixed(tmp[:0], float64(p.Value), p.Digits)
	if len(out) > floatRoom {
		return
	}
	_, _ = w.Write(out)
}

// Quote writes Value between single quotes.
type Quote[T any] struct{ Value T }

// Quoted wraps v in single quotes.
func Quoted[T any](v T) Quote[T] { return Quote[T]{Value: v} }

func (q Quote[T]) FormatText(w Writer) {
	_ = w.WriteByte('\'')
	w.Format(q.Value)
	_ = w.WriteByte('\'')
}

// DQuote writes Value between double quotes. Nothing inside is escaped.
type DQuote[T any] struct{ Value T }

// DQuoted wraps v in double quotes.
func DQuoted[T any](v T) DQuote[T] { return DQuote[T]{Value: v} }

func (q DQuote[T]) FormatText(w Writer) {
	_ = w.WriteByte('"')
	w.Format(q.Value)
	_ = w.WriteByte('"')
}

// Run writes Count copies of Char.
type Run struct {
	Char  byte
	Count int
}

// CharRun writes c n times with one allocation.
func CharRun(c byte, n int) Run { return Run{Char: c, Count: n} }

func (r Run) FormatText(w Writer) { w.CharN(r.Char, r.Count) }

// Boolean writes true or false.
type Boolean bool

// Bool wraps v so it is written as a literal.
func Bool(v bool) Boolean { return Boolean(v) }

func (b Boolean) FormatText(w Writer) {
	if b {
		_, _ = w.WriteString("true")
		return
	}
	_, _ = w.WriteString("false")
}

// Char writes a single byte.
type Char byte

func (c Char) FormatText(w Writer) { _ = w.WriteByte(byte(c)) }

// Rune writes a character UTF-8 encoded.
type Rune rune

func (r Rune) FormatText(w Writer) {
	var tmp [utf8.UTFMax]byte
	_, _ = w.Write(utf8.AppendRune(tmp[:0], rune(r)))
}

// List writes items as "[ a, b ]".
type List[T any] []T

// Seq wraps items so any element type is written as a list.
func Seq[T any](items []T) List[T] { return List[T](items) }

func (l List[T]) FormatText(w Writer) { formatSlice(w, l) }
