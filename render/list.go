package render

import "github.com/bjaus/tfmt"

func writeList[T any](buf *tfmt.Text, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Lister); !ok {
		return missing(List, "Lister", items[0])
	}
	sep := "\n"
	if s, ok := any(items[0]).(Separator); ok {
		sep = s.Sep()
	}
	n := 0
	for _, item := range items {
		for _, s := range any(item).(Lister).List() {
			if n > 0 {
				buf.AppendString(sep)
			}
			buf.AppendString(s)
			n++
		}
	}
	if n > 0 {
		buf.AppendByte('\n')
	}
	return nil
}
