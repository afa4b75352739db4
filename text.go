package tfmt

import (
	"errors"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrOutOfRange = errors.New("index out of range")
	ErrNoSpace    = errors.New("no space left in storage")
)

// Basic is a text accumulator writing into storage S. It owns S exclusively.
// Copying a Basic copies bounded storage outright; a heap-backed copy takes
// its own buffer on its first write (see [Heap]). Clone copies immediately.
// The zero value is ready to use.
//
// Use the aliases [Text] for heap storage and [ShortText] through
// [LargeText] for bounded storage.
type Basic[S any, P StoragePtr[S]] struct {
	s S
}

type (
	Text           = Basic[Heap, *Heap]
	ShortText      = Basic[ShortString, *ShortString]
	LineText       = Basic[LineString, *LineString]
	LongText       = Basic[LongString, *LongString]
	PageText       = Basic[PageString, *PageString]
	DoublePageText = Basic[DoublePageString, *DoublePageString]
	LargeText      = Basic[LargeString, *LargeString]
)

// NewText returns a heap-backed accumulator configured by opts.
func NewText(opts ...HeapOption) *Text {
	return &Text{s: NewHeap(opts...)}
}

// Of formats args into a new heap-backed accumulator.
func Of(args ...any) *Text {
	t := new(Text)
	t.Format(args...)
	return t
}

// New formats args into a new accumulator backed by storage S.
//
//	t := tfmt.New[tfmt.PageString]("id=", 42)
func New[S any, P StoragePtr[S]](args ...any) *Basic[S, P] {
	t := new(Basic[S, P])
	t.Format(args...)
	return t
}

// Str formats args and returns the resulting string.
func Str(args ...any) string {
	var t Text
	t.Format(args...)
	return t.View()
}

func (t *Basic[S, P]) st() P { return P(&t.s) }

func (t *Basic[S, P]) Len() int    { return t.st().Len() }
func (t *Basic[S, P]) Cap() int    { return t.st().Cap() }
func (t *Basic[S, P]) Empty() bool { return t.st().Len() == 0 }

// Clear drops the contents and keeps the capacity.
func (t *Basic[S, P]) Clear() { t.st().Clear() }

// Reserve grows capacity to the smallest power of two >= n.
func (t *Basic[S, P]) Reserve(n int) {
	s := t.st()
	if n <= s.Cap() {
		return
	}
	s.Reserve(nextPow2(n))
}

// Storage returns the underlying storage.
func (t *Basic[S, P]) Storage() P { return t.st() }

// Clone returns an accumulator holding an independent copy of t's storage.
func (t *Basic[S, P]) Clone() *Basic[S, P] {
	return &Basic[S, P]{s: t.st().Clone()}
}

// Take moves the storage out, leaving t empty.
func (t *Basic[S, P]) Take() S { return t.st().Detach() }

// Bytes returns the written bytes without copying. The slice is valid until
// the next write.
func (t *Basic[S, P]) Bytes() []byte {
	s := t.st()
	return s.Data()[:s.Len()]
}

// String returns a copy of the written text.
func (t *Basic[S, P]) String() string { return string(t.Bytes()) }

// View returns the written text without copying. The string aliases the
// storage and must not outlive the next write.
func (t *Basic[S, P]) View() string { return unsafeString(t.Bytes()) }

// Byte returns the byte at i without checking it against the length.
func (t *Basic[S, P]) Byte(i int) byte { return t.st().Data()[i] }

// SetByte overwrites the byte at i without checking it against the length.
func (t *Basic[S, P]) SetByte(i int, c byte) { t.st().Data()[i] = c }

// At returns the byte at i, or ErrOutOfRange when i is not below Len.
func (t *Basic[S, P]) At(i int) (byte, error) {
	s := t.st()
	if i < 0 || i >= s.Len() {
		return 0, ErrOutOfRange
	}
	return s.Data()[i], nil
}

// allocate extends the length by n and returns the offset of the new region.
// It reports false, leaving the storage unchanged, when capacity cannot be
// obtained.
func (t *Basic[S, P]) allocate(n int) (int, bool) {
	s := t.st()
	start := s.Len()
	if n < 0 || n > maxInt-start {
		return start, false
	}
	next := start + n
	if next > s.Cap() {
		t.Reserve(next)
		if s.Cap() < next {
			return start, false
		}
	}
	s.Resize(next)
	return start, true
}

// release trims the length back to end after a write that used less than
// its allocation.
func (t *Basic[S, P]) release(end int) { t.st().Resize(end) }

// Append copies p to the end. Nothing is written when p is empty or storage
// cannot grow.
func (t *Basic[S, P]) Append(p []byte) *Basic[S, P] {
	if len(p) == 0 {
		return t
	}
	start, ok := t.allocate(len(p))
	if !ok {
		return t
	}
	copy(t.st().Data()[start:], p)
	return t
}

// AppendString copies s to the end.
func (t *Basic[S, P]) AppendString(s string) *Basic[S, P] {
	if len(s) == 0 {
		return t
	}
	start, ok := t.allocate(len(s))
	if !ok {
		return t
	}
	copy(t.st().Data()[start:], s)
	return t
}

// AppendByte appends a single byte.
func (t *Basic[S, P]) AppendByte(c byte) *Basic[S, P] {
	start, ok := t.allocate(1)
	if !ok {
		return t
	}
	t.st().Data()[start] = c
	return t
}

// CharN appends n copies of c with a single allocation.
func (t *Basic[S, P]) CharN(c byte, n int) {
	if n <= 0 {
		return
	}
	start, ok := t.allocate(n)
	if !ok {
		return
	}
	run := t.st().Data()[start : start+n]
	for i := range run {
		run[i] = c
	}
}

// Write implements io.Writer. A write that does not fit is dropped whole
// and reported as ErrNoSpace.
func (t *Basic[S, P]) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	before := t.Len()
	t.Append(p)
	if t.Len() == before {
		return 0, ErrNoSpace
	}
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (t *Basic[S, P]) WriteString(s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}
	before := t.Len()
	t.AppendString(s)
	if t.Len() == before {
		return 0, ErrNoSpace
	}
	return len(s), nil
}

// WriteByte implements io.ByteWriter.
func (t *Basic[S, P]) WriteByte(c byte) error {
	before := t.Len()
	t.AppendByte(c)
	if t.Len() == before {
		return ErrNoSpace
	}
	return nil
}

// WriteTo writes the accumulated text to w. The contents are kept.
func (t *Basic[S, P]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.Bytes())
	return int64(n), err
}
