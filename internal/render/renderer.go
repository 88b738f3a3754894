package render

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

// Template identifiers understood by the built-in renderer.
const (
	TemplateClient         = "client"
	TemplateContainer      = "container"
	TemplateMethod         = "method"
	TemplateResponse       = "response"
	TemplateModel          = "model"
	TemplateModelBase      = "model-base"
	TemplateModelAttribute = "model-attribute"
	TemplateModelHasOne    = "model-has-one"
	TemplateModelHasMany   = "model-has-many"
)

const templateExt = ".tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

var builtinTemplates = template.Must(
	template.New("").Option("missingkey=error").ParseFS(templateFS, "templates/*"+templateExt),
)

// Renderer turns a template identifier and its substitutions into text.
type Renderer interface {
	Render(templateID string, values map[string]string) (string, error)
}

// TemplateRenderer renders the embedded templates.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer returns a renderer over the built-in templates.
func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{templates: builtinTemplates}
}

// Render executes templateID with values. Every key the template reads must be
// present in values.
func (r *TemplateRenderer) Render(templateID string, values map[string]string) (string, error) {
	tmpl := r.templates.Lookup(templateID + templateExt)
	if tmpl == nil {
		return "", fmt.Errorf("template %q not found, available: %s", templateID, strings.Join(r.TemplateIDs(), ", "))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return "", fmt.Errorf("render %s: %w", templateID, err)
	}

	return buf.String(), nil
}

// TemplateIDs lists the available template identifiers.
func (r *TemplateRenderer) TemplateIDs() []string {
	var ids []string
	for _, t := range r.templates.Templates() {
		if id, ok := strings.CutSuffix(t.Name(), templateExt); ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
