package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/tfmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrMissingInterface  = errors.New("missing required interface")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format names an output format.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	Table    Format = "table"
	Markdown Format = "markdown"
	List     Format = "list"
	ENV      Format = "env"
	Plain    Format = "plain"
	TSV      Format = "tsv"
	JSONL    Format = "jsonl"
)

const goTemplatePrefix = "go-template="

var formats = []Format{JSON, YAML, CSV, Table, Markdown, List, ENV, Plain, TSV, JSONL}

func (f Format) String() string { return string(f) }

// Formats returns the static format names. GoTemplate is parameterized and
// not listed.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format executing tmpl once per item, one item per line.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format name or a go-template=<tmpl> string.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// IsSupported reports whether T implements what format f requires. JSON,
// JSONL, YAML, Plain and templates accept any type.
func IsSupported[T any](f Format) bool {
	if strings.HasPrefix(string(f), goTemplatePrefix) {
		return true
	}
	var zero T
	v := any(zero)
	switch f {
	case JSON, YAML, Plain, JSONL:
		return true
	case CSV, Table, TSV:
		_, ok := v.(Rower)
		return ok
	case Markdown:
		_, rower := v.(Rower)
		_, headed := v.(Headed)
		return rower && headed
	case List:
		_, ok := v.(Lister)
		return ok
	case ENV:
		_, ok := v.(Mappable)
		return ok
	default:
		return false
	}
}

// Rower provides row data. Required for CSV, TSV, Table and Markdown.
type Rower interface {
	Row() []string
}

// Lister provides a flat list of strings. Required for List.
type Lister interface {
	List() []string
}

// Mappable provides key-value pairs. Required for ENV.
type Mappable interface {
	Pairs() []KeyValue
}

// KeyValue is a single key-value pair.
type KeyValue struct {
	Key   string
	Value string
}

// Objecter writes itself as an ordered JSON object through the tfmt
// serializer. JSON and JSONL prefer it over encoding/json.
type Objecter interface {
	Object() tfmt.Object
}

// Indented controls JSON and YAML indentation. Objecter output is always
// compact.
type Indented interface {
	Indent() string
}

// Headed provides column headers for CSV, TSV, Table and Markdown.
type Headed interface {
	Header() []string
}

// Titled renders a title above a bordered table.
type Titled interface {
	Title() string
}

// Bordered sets the table border style. Default: BorderRounded.
type Bordered interface {
	Border() BorderStyle
}

// Aligned sets per-column alignment for Table and Markdown. Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// Footered renders a footer row below the table.
type Footered interface {
	Footer() []string
}

// Numbered prepends a right-aligned row number column with the given header.
type Numbered interface {
	NumberHeader() string
}

// Captioned renders a line below the table.
type Captioned interface {
	Caption() string
}

// Truncated caps column widths; longer cells end in "...". Zero means no
// limit for that column.
type Truncated interface {
	MaxWidths() []int
}

// Delimited sets the CSV field delimiter. Default: comma.
type Delimited interface {
	Delimiter() rune
}

// Separator sets the delimiter between list items. Default: newline.
type Separator interface {
	Sep() string
}

// Exported prefixes ENV lines with "export ".
type Exported interface {
	Export() bool
}

// Quoted wraps ENV values in double quotes.
type Quoted interface {
	Quote() bool
}

// BorderStyle selects table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Write renders items in format f and writes the result to w with a single
// call. Nothing is written when rendering fails.
func Write[T any](w io.Writer, f Format, items ...T) error {
	var buf tfmt.Text
	if err := render(&buf, f, items); err != nil {
		return err
	}
	if buf.Empty() {
		return nil
	}
	_, err := buf.WriteTo(w)
	return err
}

// Marshal renders items in format f and returns the bytes.
func Marshal[T any](f Format, items ...T) ([]byte, error) {
	var buf tfmt.Text
	if err := render(&buf, f, items); err != nil {
		return nil, err
	}
	out := buf.Take()
	return out.Bytes(), nil
}

func render[T any](buf *tfmt.Text, f Format, items []T) error {
	switch f {
	case JSON:
		return writeJSON(buf, items)
	case YAML:
		return writeYAML(buf, items)
	case CSV:
		return writeCSV(buf, items)
	case Table:
		return writeTable(buf, items)
	case Markdown:
		return writeMarkdown(buf, items)
	case List:
		return writeList(buf, items)
	case ENV:
		return writeENV(buf, items)
	case Plain:
		return writePlain(buf, items)
	case TSV:
		return writeTSV(buf, items)
	case JSONL:
		return writeJSONL(buf, items)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(buf, tmpl, items)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func missing(f Format, iface string, item any) error {
	return fmt.Errorf("%w: format %q requires %s, not implemented by %T", ErrMissingInterface, f, iface, item)
}
