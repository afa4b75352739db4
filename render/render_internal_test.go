package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/tfmt"
)

func TestAlignCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		s     string
		width int
		align Alignment
		want  string
	}{
		"left":        {s: "ab", width: 5, align: AlignLeft, want: "ab   "},
		"right":       {s: "ab", width: 5, align: AlignRight, want: "   ab"},
		"center":      {s: "ab", width: 5, align: AlignCenter, want: " ab  "},
		"overflow":    {s: "abcdef", width: 3, align: AlignLeft, want: "abcdef"},
		"wide glyphs": {s: "你", width: 4, align: AlignRight, want: "  你"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf tfmt.Text
			alignCell(&buf, tt.s, tt.width, tt.align)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteCellTruncates(t *testing.T) {
	t.Parallel()
	var buf tfmt.Text
	writeCell(&buf, "Hello, world", 8, AlignLeft)
	assert.Equal(t, "Hello...", buf.String())

	buf.Clear()
	writeCell(&buf, "Hello", 2, AlignLeft)
	assert.Equal(t, "He", buf.String())
}

func TestInnerWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, innerWidth(nil))
	assert.Equal(t, 7, innerWidth([]int{5}))
	assert.Equal(t, 13, innerWidth([]int{5, 3}))
}
