package render

import "github.com/bjaus/tfmt"

// writePlain writes each item on its own line using the accumulator's
// formatting: Stringers and errors write themselves, numbers use exact
// decimal text.
func writePlain[T any](buf *tfmt.Text, items []T) error {
	for _, item := range items {
		buf.Format(item, tfmt.Char('\n'))
	}
	return nil
}
