package tfmt_test

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/tfmt"
)

func TestAppendUTF16(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		units []uint16
		want  string
	}{
		"ascii":           {units: utf16.Encode([]rune("abc")), want: "abc"},
		"surrogate pair":  {units: utf16.Encode([]rune("a😀b")), want: "a😀b"},
		"bmp":             {units: utf16.Encode([]rune("héllo€")), want: "héllo€"},
		"lone high":       {units: []uint16{0xD800, 'x'}, want: "�x"},
		"trailing high":   {units: []uint16{'a', 0xD83D}, want: "a�"},
		"lone low":        {units: []uint16{0xDC00}, want: "�"},
		"empty":           {units: nil, want: ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var txt tfmt.Text
			assert.Equal(t, tt.want, txt.AppendUTF16(tt.units).String())
		})
	}
}
