package summary

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplates []byte

// Template names every template set must define
const (
	LongSummary   = "long_summary"
	ShortSummary  = "short_summary"
	LongFallback  = "long_fallback"
	ShortFallback = "short_fallback"
)

var requiredTemplates = []string{LongSummary, ShortSummary, LongFallback, ShortFallback}

// Templates is a versioned set of parsed prompt and fallback templates
type Templates struct {
	Version int
	set     map[string]*template.Template
}

type templateFile struct {
	Version   int               `yaml:"version"`
	Templates map[string]string `yaml:"templates"`
}

// DefaultTemplates returns the templates compiled into the binary
func DefaultTemplates() *Templates {
	t, err := LoadTemplates(bytes.NewReader(defaultTemplates))
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return t
}

// LoadTemplates parses a YAML template file. All required templates must be present.
func LoadTemplates(r io.Reader) (*Templates, error) {
	var f templateFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode templates: %w", err)
	}

	t := &Templates{Version: f.Version, set: make(map[string]*template.Template, len(f.Templates))}
	for _, name := range requiredTemplates {
		body, ok := f.Templates[name]
		if !ok || strings.TrimSpace(body) == "" {
			return nil, fmt.Errorf("template %q is missing", name)
		}
		tmpl, err := template.New(name).Option("missingkey=error").Parse(body)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
		}
		t.set[name] = tmpl
	}
	return t, nil
}

// Render executes a named template against data
func (t *Templates) Render(name string, data any) (string, error) {
	tmpl, ok := t.set[name]
	if !ok {
		return "", fmt.Errorf("unknown template %q", name)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}
