package templates

import (
	"bytes"
	"fmt"
	"io/fs"
	"text/template"
)

// ReadmeTemplate is the README skeleton's path in the template filesystem.
const ReadmeTemplate = "readme/README.md.tmpl"

// RenderReadme renders the project README from fsys.
func RenderReadme(fsys fs.FS, data ReadmeData) ([]byte, error) {
	content, err := fs.ReadFile(fsys, ReadmeTemplate)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", ReadmeTemplate, err)
	}

	return renderFile("README.md", content, data)
}

// renderFile parses content as a text template and executes it.
func renderFile(name string, content []byte, data any) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
