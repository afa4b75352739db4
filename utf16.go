package tfmt

import (
	"unicode/utf16"
	"unicode/utf8"
)

// AppendUTF16 appends UTF-16 code units converted to UTF-8. Unpaired
// surrogates become U+FFFD. The worst-case size is reserved once up front;
// when it cannot be, nothing is written.
func (t *Basic[S, P]) AppendUTF16(units []uint16) *Basic[S, P] {
	if len(units) == 0 {
		return t
	}
	room := len(units) * 3
	start, ok := t.allocate(room)
	if !ok {
		return t
	}
	dst := t.st().Data()[start : start+room]
	n := 0
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if utf16.IsSurrogate(r) {
			if i+1 < len(units) {
				if pair := utf16.DecodeRune(r, rune(units[i+1])); pair != utf8.RuneError {
					r = pair
					i++
				} else {
					r = utf8.RuneError
				}
			} else {
				r = utf8.RuneError
			}
		}
		n += utf8.EncodeRune(dst[n:], r)
	}
	t.release(start + n)
	return t
}
