package tfmt

import (
	"fmt"
	"unicode/utf8"
)

// Field pairs a name with a value inside an [Object].
type Field struct {
	Name  string
	Value any
}

// F builds a Field.
func F(name string, v any) Field { return Field{Name: name, Value: v} }

// Object is an ordered list of fields. Fields are emitted in order; names are
// neither validated nor deduplicated.
type Object []Field

// Obj builds an Object from alternating names and values:
//
//	tfmt.Obj("x", 1, "y", 2)
//
// A trailing name without a value is dropped. Names that are not strings are
// formatted with [Str].
func Obj(pairs ...any) Object {
	o := make(Object, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			name = Str(pairs[i])
		}
		o = append(o, Field{Name: name, Value: pairs[i+1]})
	}
	return o
}

// Optional is a value that may be absent. Object fields holding an absent
// Optional are omitted, except for the first field, which is written as null.
type Optional interface {
	Get() (any, bool)
}

// Opt is the generic [Optional].
type Opt[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Opt.
func Some[T any](v T) Opt[T] { return Opt[T]{Value: v, Valid: true} }

// None returns an absent Opt.
func None[T any]() Opt[T] { return Opt[T]{} }

func (o Opt[T]) Get() (any, bool) {
	if !o.Valid {
		return nil, false
	}
	return o.Value, true
}

// Raw is JSON text written verbatim.
type Raw string

// Null writes the JSON null literal.
const Null Raw = "null"

// Escaped is a string written as a JSON string with quotes, backslashes and
// control characters escaped. Plain strings are written without escaping.
type Escaped string

// JSONAppender is implemented by types that write their own JSON.
//
//	func (p point) AppendJSON(e tfmt.Encoder) { e.Object(tfmt.Obj("x", p.x, "y", p.y)) }
type JSONAppender interface {
	AppendJSON(e Encoder)
}

// Encoder writes JSON values into a [Writer].
type Encoder struct {
	w Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w Writer) Encoder { return Encoder{w: w} }

// Writer returns the destination.
func (e Encoder) Writer() Writer { return e.w }

// Value writes v as JSON.
//
// Strings, byte slices, characters, bounded strings, fmt.Stringer and error
// values are wrapped in double quotes without escaping; callers must not pass
// text containing quotes or control characters, or use [Escaped]. Numbers
// use the accumulator's conversions, nil writes null, slices become arrays and
// [Object] values become objects.
func (e Encoder) Value(v any) {
	w := e.w
	switch v := v.(type) {
	case nil:
		_, _ = w.WriteString("null")
	case JSONAppender:
		v.AppendJSON(e)
	case Object:
		e.Object(v)
	case Field:
		e.Object(Object{v})
	case Optional:
		x, ok := v.Get()
		if !ok {
			_, _ = w.WriteString("null")
			return
		}
		e.Value(x)
	case Raw:
		_, _ = w.WriteString(string(v))
	case Escaped:
		appendEscaped(w, string(v))
	case string:
		e.quoted(v)
	case []byte:
		e.quoted(v)
	case Char, Rune:
		e.quoted(v)
	case bool, Boolean:
		w.Format(v)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr, float32, float64:
		w.Format(v)
	case interface{ Bytes() []byte }:
		e.quoted(v.Bytes())
	case Formattable:
		w.Format(v)
	case []string:
		encodeArray(e, v)
	case []int:
		encodeArray(e, v)
	case []int64:
		encodeArray(e, v)
	case []uint64:
		encodeArray(e, v)
	case []float64:
		encodeArray(e, v)
	case []bool:
		encodeArray(e, v)
	case []any:
		encodeArray(e, v)
	case []Object:
		encodeArray(e, v)
	case fmt.Stringer:
		e.quoted(v.String())
	case error:
		e.quoted(v.Error())
	default:
		if b, ok := boundedBytes(v); ok {
			e.quoted(b)
			return
		}
		_ = w.WriteByte('"')
		_, _ = fmt.Fprint(w, v)
		_ = w.WriteByte('"')
	}
}

func (e Encoder) quoted(v any) {
	_ = e.w.WriteByte('"')
	e.w.Format(v)
	_ = e.w.WriteByte('"')
}

// Object writes o. The first field is always written; later fields holding
// an absent [Optional] are skipped. An empty Object writes {}.
func (e Encoder) Object(o Object) {
	w := e.w
	if len(o) == 0 {
		_, _ = w.WriteString("{}")
		return
	}
	_, _ = w.WriteString(`{"`)
	_, _ = w.WriteString(o[0].Name)
	_, _ = w.WriteString(`":`)
	e.Value(o[0].Value)
	for _, f := range o[1:] {
		if opt, ok := f.Value.(Optional); ok {
			if _, present := opt.Get(); !present {
				continue
			}
		}
		_, _ = w.WriteString(`,"`)
		_, _ = w.WriteString(f.Name)
		_, _ = w.WriteString(`":`)
		e.Value(f.Value)
	}
	_ = w.WriteByte('}')
}

// Array wraps items so any element type is written as a JSON array.
func Array[T any](items []T) JSONArray[T] { return JSONArray[T](items) }

// JSONArray is a slice written as a JSON array.
type JSONArray[T any] []T

func (a JSONArray[T]) AppendJSON(e Encoder) { encodeArray(e, a) }

// AppendJSON writes l as a JSON array.
func (l List[T]) AppendJSON(e Encoder) { encodeArray(e, l) }

func encodeArray[T any](e Encoder, items []T) {
	_ = e.w.WriteByte('[')
	for i := range items {
		if i > 0 {
			_ = e.w.WriteByte(',')
		}
		e.Value(items[i])
	}
	_ = e.w.WriteByte(']')
}

const hexDigits = "0123456789abcdef"

func appendEscaped(w Writer, s string) {
	_ = w.WriteByte('"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '\\' && c != '"' && c < utf8.RuneSelf {
			i++
			continue
		}
		if c < utf8.RuneSelf {
			_, _ = w.WriteString(s[start:i])
			switch c {
			case '\\', '"':
				_ = w.WriteByte('\\')
				_ = w.WriteByte(c)
			case '\n':
				_, _ = w.WriteString(`\n`)
			case '\r':
				_, _ = w.WriteString(`\r`)
			case '\t':
				_, _ = w.WriteString(`\t`)
			default:
				_, _ = w.WriteString(`\u00`)
				_ = w.WriteByte(hexDigits[c>>4])
				_ = w.WriteByte(hexDigits[c&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			_, _ = w.WriteString(s[start:i])
			_, _ = w.WriteString(`\ufffd`)
			i++
			start = i
			continue
		}
		i += size
	}
	_, _ = w.WriteString(s[start:])
	_ = w.WriteByte('"')
}

// BasicJSON serializes values into storage S.
type BasicJSON[S any, P StoragePtr[S]] struct {
	text Basic[S, P]
}

type (
	JSON           = BasicJSON[Heap, *Heap]
	LongJSON       = BasicJSON[LongString, *LongString]
	PageJSON       = BasicJSON[PageString, *PageString]
	DoublePageJSON = BasicJSON[DoublePageString, *DoublePageString]
	LargeJSON      = BasicJSON[LargeString, *LargeString]
)

// JSONOf serializes args into a fresh S. No arguments give {}, a single
// argument is written as a value, and more are read as name/value pairs of an
// object.
//
//	s := tfmt.JSONOf[tfmt.Heap]("x", -1) // {"x":-1}
func JSONOf[S any, P StoragePtr[S]](args ...any) S {
	var j BasicJSON[S, P]
	j.of(args)
	return j.Take()
}

// JSONString is JSONOf on heap storage, returned as a string.
func JSONString(args ...any) string {
	var j JSON
	j.of(args)
	return j.text.View()
}

func (j *BasicJSON[S, P]) of(args []any) {
	switch len(args) {
	case 0:
		j.text.AppendString("{}")
	case 1:
		j.Value(args[0])
	default:
		j.Value(Obj(args...))
	}
}

// Value appends v as JSON.
func (j *BasicJSON[S, P]) Value(v any) *BasicJSON[S, P] {
	j.Encoder().Value(v)
	return j
}

// Encoder returns an Encoder writing into j.
func (j *BasicJSON[S, P]) Encoder() Encoder { return Encoder{w: &j.text} }

// Text returns the underlying accumulator.
func (j *BasicJSON[S, P]) Text() *Basic[S, P] { return &j.text }

func (j *BasicJSON[S, P]) Len() int       { return j.text.Len() }
func (j *BasicJSON[S, P]) Cap() int       { return j.text.Cap() }
func (j *BasicJSON[S, P]) Empty() bool    { return j.text.Empty() }
func (j *BasicJSON[S, P]) Clear()         { j.text.Clear() }
func (j *BasicJSON[S, P]) Reserve(n int)  { j.text.Reserve(n) }
func (j *BasicJSON[S, P]) Bytes() []byte  { return j.text.Bytes() }
func (j *BasicJSON[S, P]) String() string { return j.text.String() }
func (j *BasicJSON[S, P]) View() string   { return j.text.View() }

// Take moves the serialized text out, leaving j empty.
func (j *BasicJSON[S, P]) Take() S { return j.text.Take() }
