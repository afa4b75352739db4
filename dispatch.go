package tfmt

import (
	"fmt"
	"io"
	"unsafe"
)

// Writer is the write surface every accumulator exposes to formatters.
// Bytes returns the written text and may be modified in place.
type Writer interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
	Format(args ...any)
	CharN(c byte, n int)
	Len() int
	Bytes() []byte
}

// Formattable is implemented by values that write themselves. Adding a
// formattable type only requires this method; the accumulator is unchanged.
//
//	func (p point) FormatText(w tfmt.Writer) { w.Format("(", p.x, ", ", p.y, ")") }
type Formattable interface {
	FormatText(w Writer)
}

var _ Writer = (*Text)(nil)

// Format writes each argument in order, completing one before starting the
// next.
//
// Strings and byte slices are copied verbatim. Integers and floats use exact
// decimal conversion and shortest round-trip text respectively; bool writes
// true or false; nil writes nothing. Note that rune and byte constants are
// integers: use [Char] or [Rune] to write characters. Values implementing
// [Formattable], fmt.Stringer or error write themselves, and common slices
// are written as "[ a, b ]". Anything else falls back to fmt.Fprint.
func (t *Basic[S, P]) Format(args ...any) {
	for _, arg := range args {
		t.format(arg)
	}
}

func (t *Basic[S, P]) format(arg any) {
	switch v := arg.(type) {
	case nil:
	case Formattable:
		v.FormatText(t)
	case string:
		t.AppendString(v)
	case []byte:
		t.Append(v)
	case int:
		t.appendInt(int64(v), int64Room)
	case int8:
		t.appendInt(int64(v), int32Room)
	case int16:
		t.appendInt(int64(v), int32Room)
	case int32:
		t.appendInt(int64(v), int32Room)
	case int64:
		t.appendInt(v, int64Room)
	case uint:
		t.appendUint(uint64(v), uint64Room)
	case uint8:
		t.appendUint(uint64(v), uint32Room)
	case uint16:
		t.appendUint(uint64(v), uint32Room)
	case uint32:
		t.appendUint(uint64(v), uint32Room)
	case uint64:
		t.appendUint(v, uint64Room)
	case uintptr:
		t.appendUint(uint64(v), uint64Room)
	case float32:
		t.AppendFloat32(v)
	case float64:
		t.AppendFloat(v)
	case bool:
		t.appendBool(v)
	case []string:
		formatSlice(t, v)
	case []int:
		formatSlice(t, v)
	case []int64:
		formatSlice(t, v)
	case []uint64:
		formatSlice(t, v)
	case []float64:
		formatSlice(t, v)
	case []bool:
		formatSlice(t, v)
	case []any:
		formatSlice(t, v)
	default:
		if b, ok := boundedBytes(arg); ok {
			t.Append(b)
			return
		}
		t.formatOther(arg)
	}
}

func (t *Basic[S, P]) formatOther(arg any) {
	switch v := arg.(type) {
	case interface{ Bytes() []byte }:
		t.Append(v.Bytes())
	case fmt.Stringer:
		t.AppendString(v.String())
	case error:
		t.AppendString(v.Error())
	default:
		_, _ = fmt.Fprint(t, v)
	}
}

func (t *Basic[S, P]) appendBool(v bool) {
	if v {
		t.AppendString("true")
		return
	}
	t.AppendString("false")
}

// formatSlice writes items as "[ a, b ]"; an empty slice gives "[ ]".
func formatSlice[T any](w Writer, items []T) {
	_ = w.WriteByte('[')
	for i := range items {
		if i == 0 {
			_ = w.WriteByte(' ')
		} else {
			_, _ = w.WriteString(", ")
		}
		w.Format(items[i])
	}
	_, _ = w.WriteString(" ]")
}

// boundedBytes unwraps bounded strings passed by value.
func boundedBytes(arg any) ([]byte, bool) {
	switch v := arg.(type) {
	case ShortString:
		return v.Bytes(), true
	case LineString:
		return v.Bytes(), true
	case LongString:
		return v.Bytes(), true
	case PageString:
		return v.Bytes(), true
	case DoublePageString:
		return v.Bytes(), true
	case LargeString:
		return v.Bytes(), true
	}
	return nil, false
}

func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
