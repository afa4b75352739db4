package render

import (
	"encoding/json"

	"github.com/bjaus/tfmt"
)

func writeJSON[T any](buf *tfmt.Text, items []T) error {
	if len(items) > 0 {
		if _, ok := any(items[0]).(Objecter); ok {
			enc := tfmt.NewEncoder(buf)
			if len(items) == 1 {
				encodeItem(enc, items[0])
			} else {
				buf.AppendByte('[')
				for i, item := range items {
					if i > 0 {
						buf.AppendByte(',')
					}
					encodeItem(enc, item)
				}
				buf.AppendByte(']')
			}
			buf.AppendByte('\n')
			return nil
		}
	}
	enc := json.NewEncoder(buf)
	if len(items) > 0 {
		if ind, ok := any(items[0]).(Indented); ok {
			enc.SetIndent("", ind.Indent())
		}
	}
	if len(items) == 1 {
		return enc.Encode(items[0])
	}
	return enc.Encode(items)
}

func encodeItem(enc tfmt.Encoder, item any) {
	if o, ok := item.(Objecter); ok {
		enc.Object(o.Object())
		return
	}
	enc.Value(item)
}
