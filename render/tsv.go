package render

import "github.com/bjaus/tfmt"

func writeTSV[T any](buf *tfmt.Text, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Rower); !ok {
		return missing(TSV, "Rower", items[0])
	}
	if h, ok := any(items[0]).(Headed); ok {
		joinLine(buf, h.Header(), "\t")
	}
	for _, item := range items {
		joinLine(buf, any(item).(Rower).Row(), "\t")
	}
	return nil
}

// joinLine writes cells separated by sep and ends the line.
func joinLine(buf *tfmt.Text, cells []string, sep string) {
	for i, c := range cells {
		if i > 0 {
			buf.AppendString(sep)
		}
		buf.AppendString(c)
	}
	buf.AppendByte('\n')
}
