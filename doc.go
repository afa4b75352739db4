// Package tfmt builds text from typed values with fmt-like ergonomics and
// without per-call allocation.
//
// An accumulator collects the text of every argument passed to Format into
// one contiguous buffer:
//
//	var t tfmt.Text
//	t.Format("id=", 42, " ratio=", 0.25, " ok=", true)
//	fmt.Println(t.View()) // id=42 ratio=0.25 ok=true
//
// Numbers are converted in place, directly into the buffer, with exact
// decimal text for integers and the shortest round-trip text for floats. No
// locale is consulted.
//
// # Storage
//
// [Basic] is generic over its storage. [Text] grows on the heap, doubling to
// the next power of two. The bounded aliases [ShortText] through [LargeText]
// keep their bytes inline in fixed size classes and never allocate: a write
// that does not fit is dropped whole. [Bounded] strings can also be used on
// their own as fixed-capacity value strings.
//
// # Extending
//
// Any type can format itself by implementing [Formattable]:
//
//	func (p Point) FormatText(w tfmt.Writer) { w.Format("(", p.X, ", ", p.Y, ")") }
//
// The combinators [Left], [Right], [Fixed], [Precised], [Quoted], [DQuoted],
// [CharRun] and [Seq] wrap values to pad, align, quote or repeat them.
// Rune and byte values are integers in Go; wrap them in [Char] or [Rune] to
// write characters.
//
// # JSON
//
// [JSONOf] and [BasicJSON] serialize values, [Object] and [Obj] build ordered
// objects, and [Opt] marks fields that are omitted when absent:
//
//	tfmt.JSONString("x", -1, "tag", tfmt.None[string]()) // {"x":-1}
//
// Strings are quoted but not escaped. Use [Escaped] for arbitrary text.
//
// # Output
//
// [Console] prints whole lines from many goroutines. [TextFile] and
// [BufferedFile] write lines to files. Every Print formats into an
// accumulator first and issues a single write.
//
// # Errors
//
// Formatting never fails; out-of-space writes are dropped. Errors surface
// only from checked access ([ErrOutOfRange]), the io.Writer methods
// ([ErrNoSpace]) and I/O.
package tfmt
