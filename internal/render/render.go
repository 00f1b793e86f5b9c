package render

import (
	"bytes"
	"fmt"
	"text/template"
)

// Context maps variable names to the values substituted into templates.
// Values are strings, numbers, or nested tables (port and URL maps).
type Context map[string]any

// Render executes tmpl against ctx and returns the rendered bytes. name is
// used in error messages only. An unresolved variable reference fails the
// render; nothing superficially valid is ever produced from a bad context.
func Render(name, tmpl string, ctx Context) ([]byte, error) {
	t, err := template.New(name).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
