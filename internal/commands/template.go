package commands

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for message templates.
var templateFuncs = sprig.TxtFuncMap()

// ExpandTemplate expands a message template. The data can be any
// struct; templates access fields via {{ .FieldName }}.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// expand is ExpandTemplate with a fallback: a bad template degrades to
// the raw string rather than swallowing the message.
func expand(tmplStr string, data any) string {
	out, err := ExpandTemplate(tmplStr, data)
	if err != nil {
		return tmplStr
	}
	return out
}
