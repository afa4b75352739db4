package tfmt

import (
	"bytes"
	"math/bits"
	"unsafe"
)

// NPos is returned by the Find methods when nothing matches.
const NPos = maxInt

const wordSize = bits.UintSize / 8

// Capacities of the bounded size classes. Each class occupies exactly its
// nominal size in memory: one length word plus the byte array, of which the
// last byte is reserved for the NUL terminator.
const (
	ShortCap      = 96 - wordSize - 1
	LineCap       = 256 - wordSize - 1
	LongCap       = 1024 - wordSize - 1
	PageCap       = 4096 - wordSize - 1
	DoublePageCap = 8192 - wordSize - 1
	LargeCap      = 65536 - wordSize - 1
)

// InlineArray is the set of inline arrays a [Bounded] string can be built on.
type InlineArray interface {
	~[ShortCap + 1]byte |
		~[LineCap + 1]byte |
		~[LongCap + 1]byte |
		~[PageCap + 1]byte |
		~[DoublePageCap + 1]byte |
		~[LargeCap + 1]byte
}

// Bounded is a fixed-capacity string stored inline. It never allocates:
// appends beyond capacity are silently truncated. The zero value is an empty
// string. Bounded values copy their whole buffer on assignment.
type Bounded[A InlineArray] struct {
	n   int
	buf A
}

type (
	ShortString      = Bounded[[ShortCap + 1]byte]
	LineString       = Bounded[[LineCap + 1]byte]
	LongString       = Bounded[[LongCap + 1]byte]
	PageString       = Bounded[[PageCap + 1]byte]
	DoublePageString = Bounded[[DoublePageCap + 1]byte]
	LargeString      = Bounded[[LargeCap + 1]byte]
)

// raw exposes the inline array, terminator slot included.
func (s *Bounded[A]) raw() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&s.buf)), len(s.buf))
}

func (s *Bounded[A]) Len() int    { return s.n }
func (s *Bounded[A]) Cap() int    { return len(s.buf) - 1 }
func (s *Bounded[A]) Empty() bool { return s.n == 0 }

// Reserve is a no-op: capacity is fixed by the type.
func (s *Bounded[A]) Reserve(int) {}

// Resize sets the length. Lengths beyond capacity are ignored.
func (s *Bounded[A]) Resize(n int) {
	if n < 0 || n > s.Cap() {
		return
	}
	s.n = n
	s.raw()[n] = 0
}

// Data returns the writable region, excluding the terminator slot.
func (s *Bounded[A]) Data() []byte { return s.raw()[:s.Cap()] }

func (s *Bounded[A]) Clear() {
	s.n = 0
	s.raw()[0] = 0
}

// Clone returns a copy of s.
func (s *Bounded[A]) Clone() Bounded[A] { return *s }

// Detach returns a copy and clears s.
func (s *Bounded[A]) Detach() Bounded[A] {
	out := *s
	s.Clear()
	return out
}

// Bytes returns the used span without copying.
func (s *Bounded[A]) Bytes() []byte { return s.raw()[:s.n] }

// String returns a copy of the contents.
func (s *Bounded[A]) String() string { return string(s.Bytes()) }

// View returns the contents as a string without copying. The result aliases
// the buffer and changes with it.
func (s *Bounded[A]) View() string {
	return unsafe.String(&s.raw()[0], s.n)
}

// Byte returns the byte at i without checking it against the length.
func (s *Bounded[A]) Byte(i int) byte { return s.raw()[i] }

// SetByte overwrites the byte at i without checking it against the length.
func (s *Bounded[A]) SetByte(i int, c byte) { s.raw()[i] = c }

// At returns the byte at i, or ErrOutOfRange when i is not below Len.
func (s *Bounded[A]) At(i int) (byte, error) {
	if i < 0 || i >= s.n {
		return 0, ErrOutOfRange
	}
	return s.raw()[i], nil
}

func (s *Bounded[A]) Front() byte { return s.raw()[0] }

func (s *Bounded[A]) Back() byte {
	if s.n == 0 {
		return 0
	}
	return s.raw()[s.n-1]
}

// Append copies as much of p as fits.
func (s *Bounded[A]) Append(p []byte) *Bounded[A] {
	if len(p) == 0 {
		return s
	}
	raw := s.raw()
	k := copy(raw[s.n:s.Cap()], p)
	s.n += k
	raw[s.n] = 0
	return s
}

// AppendString copies as much of str as fits.
func (s *Bounded[A]) AppendString(str string) *Bounded[A] {
	if len(str) == 0 {
		return s
	}
	raw := s.raw()
	k := copy(raw[s.n:s.Cap()], str)
	s.n += k
	raw[s.n] = 0
	return s
}

// PushBack appends c unless the string is full.
func (s *Bounded[A]) PushBack(c byte) {
	if s.n >= s.Cap() {
		return
	}
	raw := s.raw()
	raw[s.n] = c
	s.n++
	raw[s.n] = 0
}

// PopBack drops the last byte, if any.
func (s *Bounded[A]) PopBack() {
	if s.n == 0 {
		return
	}
	s.n--
	s.raw()[s.n] = 0
}

// Assign replaces the contents with str, truncated to capacity.
func (s *Bounded[A]) Assign(str string) *Bounded[A] {
	s.Clear()
	return s.AppendString(str)
}

// AssignBytes replaces the contents with p, truncated to capacity.
func (s *Bounded[A]) AssignBytes(p []byte) *Bounded[A] {
	s.Clear()
	return s.Append(p)
}

// Compare orders s against str lexicographically, returning -1, 0 or 1.
// An empty str compares as 0 against an empty s and as 1 otherwise; the
// check happens before any byte is inspected.
func (s *Bounded[A]) Compare(str string) int {
	if len(str) == 0 {
		if s.n == 0 {
			return 0
		}
		return 1
	}
	return bytes.Compare(s.Bytes(), unsafe.Slice(unsafe.StringData(str), len(str)))
}

// Equal reports whether s holds exactly str.
func (s *Bounded[A]) Equal(str string) bool { return s.Compare(str) == 0 }

// FindFirstOf returns the index of the first c at or after from, or NPos.
func (s *Bounded[A]) FindFirstOf(c byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= s.n {
		return NPos
	}
	if i := bytes.IndexByte(s.Bytes()[from:], c); i >= 0 {
		return from + i
	}
	return NPos
}

// FindLastOf returns the index of the last c at or before from, or NPos.
// A from beyond the end searches the whole string.
func (s *Bounded[A]) FindLastOf(c byte, from int) int {
	if s.n == 0 || from < 0 {
		return NPos
	}
	if from >= s.n {
		from = s.n - 1
	}
	if i := bytes.LastIndexByte(s.Bytes()[:from+1], c); i >= 0 {
		return i
	}
	return NPos
}

// Substr returns up to n bytes starting at pos, clamped to the used span.
func (s *Bounded[A]) Substr(pos, n int) string {
	if pos < 0 || pos >= s.n || n <= 0 {
		return ""
	}
	end := pos + n
	if end > s.n || end < pos {
		end = s.n
	}
	return string(s.raw()[pos:end])
}

// CopyTo writes the contents into dst followed by a NUL, truncating to
// len(dst)-1 bytes. It returns the number of content bytes copied.
func (s *Bounded[A]) CopyTo(dst []byte) int {
	if len(dst) == 0 {
		return 0
	}
	k := copy(dst[:len(dst)-1], s.Bytes())
	dst[k] = 0
	return k
}

// FormatText writes the contents into w.
func (s *Bounded[A]) FormatText(w Writer) { _, _ = w.Write(s.Bytes()) }
