package render

import (
	"fmt"
	"strings"

	"github.com/griffnb/core-httpgen/internal/console"
	"github.com/griffnb/core-httpgen/internal/domain"
)

const modelIndent = "        "

var modelMethodTemplates = map[domain.ModelMethodKind]string{
	domain.AttributeMethod: TemplateModelAttribute,
	domain.HasOneMethod:    TemplateModelHasOne,
	domain.HasManyMethod:   TemplateModelHasMany,
}

// models renders the shared base model followed by one class per model.
func (g *Generator) models(graph Graph, ns string) ([]Artifact, error) {
	models := graph.Models()
	if len(models) == 0 {
		return nil, nil
	}

	ns += `\Models`
	base, err := g.renderer.Render(TemplateModelBase, map[string]string{"namespace": ns})
	if err != nil {
		return nil, fmt.Errorf("model base: %w", err)
	}

	artifacts := make([]Artifact, 0, len(models)+1)
	artifacts = append(artifacts, Artifact{
		Kind:    ArtifactModel,
		Name:    "Model",
		Path:    "Models/Model.php",
		Content: base,
	})

	for _, model := range models {
		methods, err := g.modelMethods(graph, model)
		if err != nil {
			return nil, err
		}

		text, err := g.renderer.Render(TemplateModel, map[string]string{
			"namespace": ns,
			"name":      model.Name,
			"casts":     castList(model.Casts),
			"required":  requiredList(model.Required),
			"methods":   methods,
		})
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", model.Name, err)
		}

		artifacts = append(artifacts, Artifact{
			Kind:    ArtifactModel,
			Name:    model.Name,
			Path:    "Models/" + model.Name + ".php",
			Content: text,
		})
	}

	return artifacts, nil
}

// modelMethods renders the accessors of a model. Relationships to models
// absent from the graph degrade to plain attribute accessors.
func (g *Generator) modelMethods(graph Graph, model *domain.ModelDescriptor) (string, error) {
	if len(model.Methods) == 0 {
		return "", nil
	}

	rendered := make([]string, 0, len(model.Methods))
	for _, method := range model.Methods {
		values := map[string]string{
			"name":        method.AccessorName(),
			"attribute":   method.Name,
			"returnType":  returnType(method.ReturnType),
			"targetModel": method.Target,
		}

		templateID := modelMethodTemplates[method.Kind]
		if method.Kind != domain.AttributeMethod {
			if _, ok := graph.Model(method.Target); !ok {
				console.Logger.Debug("Render: %s.%s targets unknown model %s, using an attribute accessor",
					model.Name, method.Name, method.Target)
				templateID = TemplateModelAttribute
				values["returnType"] = "mixed"
				if method.Kind == domain.HasManyMethod {
					values["returnType"] = "?array"
				}
			}
		}
		if templateID == "" {
			return "", fmt.Errorf("model %s: accessor %s has unknown kind %s", model.Name, method.Name, method.Kind)
		}

		text, err := g.renderer.Render(templateID, values)
		if err != nil {
			return "", fmt.Errorf("model %s accessor %s: %w", model.Name, method.Name, err)
		}
		rendered = append(rendered, strings.TrimRight(text, "\n"))
	}

	return "\n\n" + strings.Join(rendered, "\n\n"), nil
}

// returnType makes scalar accessor types nullable; mixed already is.
func returnType(t string) string {
	if t == "" || t == domain.Mixed.String() {
		return "mixed"
	}
	return "?" + t
}

func castList(casts []domain.Cast) string {
	if len(casts) == 0 {
		return ""
	}
	lines := make([]string, len(casts))
	for i, c := range casts {
		lines[i] = "\n" + modelIndent + quote(c.Property) + " => " + quote(c.Type.String()) + ","
	}
	return strings.Join(lines, "") + "\n    "
}

func requiredList(required []string) string {
	if len(required) == 0 {
		return ""
	}
	lines := make([]string, len(required))
	for i, name := range required {
		lines[i] = "\n" + modelIndent + quote(name) + ","
	}
	return strings.Join(lines, "") + "\n    "
}
