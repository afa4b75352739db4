package render

import (
	"strconv"

	"github.com/bjaus/tfmt"
)

func writeENV[T any](buf *tfmt.Text, items []T) error {
	if len(items) == 0 {
		return nil
	}
	first := any(items[0])
	if _, ok := first.(Mappable); !ok {
		return missing(ENV, "Mappable", items[0])
	}
	prefix := ""
	if e, ok := first.(Exported); ok && e.Export() {
		prefix = "export "
	}
	quoted := false
	if q, ok := first.(Quoted); ok {
		quoted = q.Quote()
	}
	for i, item := range items {
		if i > 0 {
			buf.AppendByte('\n')
		}
		for _, kv := range any(item).(Mappable).Pairs() {
			buf.AppendString(prefix).AppendString(kv.Key).AppendByte('=')
			if quoted {
				buf.AppendString(strconv.Quote(kv.Value))
			} else {
				buf.AppendString(kv.Value)
			}
			buf.AppendByte('\n')
		}
	}
	return nil
}
