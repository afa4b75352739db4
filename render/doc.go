// Package render writes collections of items in the output formats a CLI
// usually offers behind a --format flag.
//
// Every format renders into a single [tfmt.Text] and reaches the destination
// writer with one Write call. When rendering fails, nothing is written.
//
//	f, err := render.ParseFormat(flagValue)
//	if err != nil {
//		return err
//	}
//	return render.Write(os.Stdout, f, items...)
//
// # Interfaces
//
// A minimal interface unlocks a format; optional interfaces refine it:
//
//   - [Rower] unlocks CSV, TSV, Table and Markdown. [Headed] adds a header row.
//   - [Lister] unlocks List. [Separator] changes the delimiter.
//   - [Mappable] unlocks ENV. [Exported] and [Quoted] make it shell safe.
//
// Tables further honour [Titled], [Bordered], [Aligned], [Footered],
// [Numbered], [Captioned] and [Truncated]. Widths are measured in display
// columns, so wide characters line up.
//
// Use [IsSupported] to check a type up front:
//
//	if render.IsSupported[Row](render.Markdown) { ... }
//
// # JSON
//
// JSON and JSONL accept any value through encoding/json, honouring
// [Indented]. Types implementing [Objecter] are written by the tfmt
// serializer instead, keeping field order and skipping absent optionals:
//
//	func (u User) Object() tfmt.Object {
//		return tfmt.Obj("name", u.Name, "email", u.Email)
//	}
//
// # Templates
//
// [GoTemplate] builds a format that executes a [text/template] once per item.
// [ParseFormat] recognizes "go-template=<tmpl>".
//
// # Errors
//
//   - [ErrUnsupportedFormat] for unknown format names
//   - [ErrMissingInterface] when items lack a required interface
//   - [ErrInvalidTemplate] for template syntax errors
package render
