package tfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/tfmt"
)

type jsonPoint struct{ x, y int }

func (p jsonPoint) AppendJSON(e tfmt.Encoder) { e.Object(tfmt.Obj("x", p.x, "y", p.y)) }

func TestJSONString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []any
		want string
	}{
		"no args":         {args: nil, want: "{}"},
		"negative":        {args: []any{"x", -1}, want: `{"x":-1}`},
		"float":           {args: []any{"x", 3.14}, want: `{"x":3.14}`},
		"string value":    {args: []any{"s"}, want: `"s"`},
		"int array":       {args: []any{[]int{1, 2, 3}}, want: `[1,2,3]`},
		"empty array":     {args: []any{[]int{}}, want: `[]`},
		"seq":             {args: []any{tfmt.Seq([]uint8{1, 2})}, want: `[1,2]`},
		"null":            {args: []any{nil}, want: `null`},
		"fields":          {args: []any{"a", 1, "b", "two", "c", true}, want: `{"a":1,"b":"two","c":true}`},
		"nested object":   {args: []any{"o", tfmt.Obj("k", "v")}, want: `{"o":{"k":"v"}}`},
		"appender":        {args: []any{jsonPoint{1, 2}}, want: `{"x":1,"y":2}`},
		"appender array":  {args: []any{tfmt.Array([]jsonPoint{{1, 2}, {3, 4}})}, want: `[{"x":1,"y":2},{"x":3,"y":4}]`},
		"optional absent": {args: []any{"a", 1, "b", tfmt.None[int](), "c", tfmt.Some(2)}, want: `{"a":1,"c":2}`},
		"absent first":    {args: []any{"a", tfmt.None[int](), "b", 1}, want: `{"a":null,"b":1}`},
		"raw":             {args: []any{"r", tfmt.Raw(`{"a":1}`)}, want: `{"r":{"a":1}}`},
		"null literal":    {args: []any{"n", tfmt.Null}, want: `{"n":null}`},
		"precision":       {args: []any{"p", tfmt.Precised(1.5, 2)}, want: `{"p":1.50}`},
		"char":            {args: []any{"c", tfmt.Char('z')}, want: `{"c":"z"}`},
		"uint":            {args: []any{"u", uint64(18446744073709551615)}, want: `{"u":18446744073709551615}`},
		"any slice":       {args: []any{[]any{1, "a", nil}}, want: `[1,"a",null]`},
		"field":           {args: []any{tfmt.F("k", false)}, want: `{"k":false}`},
		"empty object":    {args: []any{tfmt.Object{}}, want: `{}`},
		"unescaped":       {args: []any{"s", `a"b`}, want: `{"s":"a"b"}`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tfmt.JSONString(tt.args...))
		})
	}
}

func TestJSONEscaped(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   string
		want string
	}{
		"plain":   {in: "abc", want: `"abc"`},
		"quote":   {in: `a"b`, want: `"a\"b"`},
		"escapes": {in: "a\\b\n\r\t", want: `"a\\b\n\r\t"`},
		"control": {in: "\x01", want: `"\u0001"`},
		"utf8":    {in: "héllo", want: `"héllo"`},
		"invalid": {in: "a\xffb", want: `"a\ufffdb"`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tfmt.JSONString(tfmt.Escaped(tt.in)))
		})
	}
}

func TestJSONOfStorage(t *testing.T) {
	t.Parallel()
	h := tfmt.JSONOf[tfmt.Heap]("x", 1)
	assert.Equal(t, `{"x":1}`, h.String())

	s := tfmt.JSONOf[tfmt.LongString]("y", "z")
	assert.Equal(t, `{"y":"z"}`, s.String())
}

func TestBasicJSON(t *testing.T) {
	t.Parallel()
	var j tfmt.PageJSON
	j.Value(tfmt.Obj("id", 7)).Value(tfmt.Raw("\n"))
	assert.Equal(t, "{\"id\":7}\n", j.View())
	assert.Equal(t, 9, j.Len())

	j.Clear()
	assert.True(t, j.Empty())
	j.Encoder().Value([]string{"a"})
	assert.Equal(t, `["a"]`, j.String())
	assert.Equal(t, `["a"]`, j.Text().View())
}
