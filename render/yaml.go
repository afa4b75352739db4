package render

import (
	"gopkg.in/yaml.v3"

	"github.com/bjaus/tfmt"
)

func writeYAML[T any](buf *tfmt.Text, items []T) error {
	enc := yaml.NewEncoder(buf)
	if len(items) > 0 {
		if ind, ok := any(items[0]).(Indented); ok {
			enc.SetIndent(len(ind.Indent()))
		}
	}
	var err error
	if len(items) == 1 {
		err = enc.Encode(items[0])
	} else {
		err = enc.Encode(items)
	}
	if err != nil {
		return err
	}
	return enc.Close()
}
