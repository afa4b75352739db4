package render

import (
	"encoding/csv"

	"github.com/bjaus/tfmt"
)

func writeCSV[T any](buf *tfmt.Text, items []T) error {
	if len(items) == 0 {
		return nil
	}
	if _, ok := any(items[0]).(Rower); !ok {
		return missing(CSV, "Rower", items[0])
	}
	cw := csv.NewWriter(buf)
	if d, ok := any(items[0]).(Delimited); ok {
		cw.Comma = d.Delimiter()
	}
	if h, ok := any(items[0]).(Headed); ok {
		if err := cw.Write(h.Header()); err != nil {
			return err
		}
	}
	for _, item := range items {
		if err := cw.Write(any(item).(Rower).Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
