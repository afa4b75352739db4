package render

import (
	"encoding/json"

	"github.com/bjaus/tfmt"
)

func writeJSONL[T any](buf *tfmt.Text, items []T) error {
	enc := json.NewEncoder(buf)
	for _, item := range items {
		if o, ok := any(item).(Objecter); ok {
			tfmt.NewEncoder(buf).Object(o.Object())
			buf.AppendByte('\n')
			continue
		}
		if ind, ok := any(item).(Indented); ok {
			enc.SetIndent("", ind.Indent())
		} else {
			enc.SetIndent("", "")
		}
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}
