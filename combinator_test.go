package tfmt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/tfmt"
)

func TestCombinators(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		arg  any
		want string
	}{
		"fixed wider value":  {arg: tfmt.Fixed(127, 2), want: "127"},
		"fixed pads":         {arg: tfmt.Fixed(12, 4), want: "0012"},
		"fixed negative":     {arg: tfmt.Fixed(-5, 4), want: "-005"},
		"fixed uint8":        {arg: tfmt.Fixed(uint8(7), 3), want: "007"},
		"precised":           {arg: tfmt.Precised(1.0, 3), want: "1.000"},
		"precised rounds":    {arg: tfmt.Precised(2.675, 1), want: "2.7"},
		"precised float32":   {arg: tfmt.Precised(float32(2.5), 2), want: "2.50"},
		"quoted":             {arg: tfmt.Quoted(127562), want: "'127562'"},
		"dquoted":            {arg: tfmt.DQuoted("x"), want: `"x"`},
		"char run":           {arg: tfmt.CharRun('*', 7), want: "*******"},
		"left pads":          {arg: tfmt.Left(-1, 4), want: "-1  "},
		"left wider value":   {arg: tfmt.Left(-10, 2), want: "-10"},
		"right pads":         {arg: tfmt.Right(-1, 4), want: "  -1"},
		"right wider value":  {arg: tfmt.Right(-10, 2), want: "-10"},
		"right string":       {arg: tfmt.Right("ab", 5), want: "   ab"},
		"custom fill":        {arg: tfmt.RightPad[int]{Value: 7, Width: 3, Fill: '.'}, want: "..7"},
		"nested":             {arg: tfmt.Right(tfmt.Quoted(1), 5), want: "  '1'"},
		"bool":               {arg: tfmt.Bool(true), want: "true"},
		"bool false":         {arg: tfmt.Bool(false), want: "false"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tfmt.Str(tt.arg))
		})
	}
}

func TestRightAlignsAfterExistingText(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "x  ab|", tfmt.Str("x", tfmt.Right("ab", 4), "|"))
	assert.Equal(t, "n=0042;", tfmt.Str("n=", tfmt.Fixed(42, 4), ";"))
}

func TestPaddingOnBoundedText(t *testing.T) {
	t.Parallel()
	var txt tfmt.ShortText
	txt.Format(tfmt.Right(12, 6), tfmt.Left("ab", 3), tfmt.Fixed(-3, 3))
	assert.Equal(t, "    12ab -03", txt.View())
}

func TestPaddingLength(t *testing.T) {
	t.Parallel()
	values := map[string]int{"zero": 0, "positive": 42, "negative": -7, "wide": -1234567}
	for name, v := range values {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			plain := len(tfmt.Str(v))
			for width := -1; width <= 12; width++ {
				want := max(width, plain)
				assert.Len(t, tfmt.Str(tfmt.Left(v, width)), want, "left width %d", width)
				assert.Len(t, tfmt.Str(tfmt.Right(v, width)), want, "right width %d", width)
				assert.Len(t, tfmt.Str(tfmt.Fixed(v, width)), want, "fixed width %d", width)
			}
		})
	}
}

func TestHugeWidthsAreDropped(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		arg  any
		want string
	}{
		"left":     {arg: tfmt.Left(1, math.MaxInt), want: "v1"},
		"right":    {arg: tfmt.Right(1, math.MaxInt), want: "v1"},
		"fixed":    {arg: tfmt.Fixed(-1, math.MaxInt), want: "v-1"},
		"char run": {arg: tfmt.CharRun('*', math.MaxInt), want: "v"},
		"precised": {arg: tfmt.Precised(1.5, math.MaxInt), want: "v"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tfmt.Str("v", tt.arg))

			var txt tfmt.ShortText
			txt.Format("v", tt.arg)
			assert.Equal(t, tt.want, txt.View())
		})
	}
}
