package render

import (
	"fmt"
	"text/template"

	"github.com/bjaus/tfmt"
)

func writeGoTemplate[T any](buf *tfmt.Text, tmplStr string, items []T) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, item := range items {
		if err := tmpl.Execute(buf, item); err != nil {
			return err
		}
		buf.AppendByte('\n')
	}
	return nil
}
