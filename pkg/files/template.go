package files

import (
	"fmt"
	"strings"
	"text/template"
)

// Render executes tmpl as a text/template against data.
func Render(tmpl string, data any) (string, error) {
	t, err := template.New("render").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return b.String(), nil
}

// GenerateFile renders the template at src with data and writes the result to
// dest. An existing dest is kept unless override is set.
func GenerateFile(src, dest string, data any, override bool) error {
	if FileExists(dest) && !override {
		return nil
	}
	content, err := ReadFile(src)
	if err != nil {
		return err
	}
	out, err := Render(content, data)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}
	return CreateFile(CreateOptions{Target: dest, Body: out, Override: true})
}
