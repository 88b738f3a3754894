// Package model converts named schema definitions into data-model
// descriptors: scalar casts, the required list, and accessor methods for
// attributes and relationships.
package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-httpgen/internal/console"
	"github.com/griffnb/core-httpgen/internal/domain"
	"github.com/griffnb/core-httpgen/internal/schema"
)

// maxSeparators is the largest number of word separators a required entry
// or an accessor may carry.
const maxSeparators = 1

// Resolve builds the model descriptor of a definition. It returns nil when
// the definition declares no properties.
func Resolve(name string, definition *spec.Schema) (*domain.ModelDescriptor, error) {
	if definition == nil || len(definition.Properties) == 0 {
		return nil, nil
	}

	model := &domain.ModelDescriptor{Name: domain.Studly(name)}
	required := append([]string(nil), definition.Required...)

	for _, item := range definition.Properties.ToOrderedSchemaItems() {
		item := item
		property := item.Name

		typ, err := schema.Resolve(&item.Schema)
		if err != nil {
			return nil, fmt.Errorf("model %s property %s: %w", name, property, err)
		}

		if !typ.IsRelationship() {
			if typ != domain.String {
				model.Casts = append(model.Casts, domain.Cast{Property: property, Type: typ})
			}
			model.Methods = append(model.Methods, domain.ModelMethodDescriptor{
				Name:       property,
				Kind:       domain.AttributeMethod,
				ReturnType: typ.String(),
			})
			continue
		}

		required = withoutProperty(required, property)
		model.Relationships = append(model.Relationships, property)

		method, ok := relationshipMethod(property, typ, &item.Schema)
		if !ok {
			console.Logger.Debug("model %s: relationship %s has no single target, skipped", model.Name, property)
			continue
		}
		model.Methods = append(model.Methods, method)
	}

	sort.SliceStable(model.Casts, func(i, j int) bool {
		a, b := model.Casts[i], model.Casts[j]
		if a.Type.String() != b.Type.String() {
			return a.Type.String() < b.Type.String()
		}
		return a.Property < b.Property
	})

	model.Required = filterRequired(required)
	model.Methods = filterMethods(model.Methods)

	return model, nil
}

// relationshipMethod picks the accessor for a relationship property.
// Ambiguous relationships report false.
func relationshipMethod(property string, typ domain.TypeDescriptor, node *spec.Schema) (domain.ModelMethodDescriptor, bool) {
	if typ.IsNamedRelationship() {
		return domain.ModelMethodDescriptor{
			Name:       property,
			Kind:       domain.HasManyMethod,
			ReturnType: "array",
			Target:     targetModel(typ.Name),
		}, true
	}

	var target string
	if schema.IsRefSchema(node) {
		target = schema.RefName(node.Ref)
	} else {
		refs := schema.CollectRefs(node)
		if len(refs) != 1 {
			return domain.ModelMethodDescriptor{}, false
		}
		target = domain.RefBasename(refs[0])
	}

	target = targetModel(target)
	return domain.ModelMethodDescriptor{
		Name:       property,
		Kind:       domain.HasOneMethod,
		ReturnType: target,
		Target:     target,
	}, true
}

func targetModel(name string) string {
	return domain.Singular(domain.Studly(name))
}

// withoutProperty drops property and its dotted sub-keys from names.
func withoutProperty(names []string, property string) []string {
	kept := names[:0]
	for _, name := range names {
		if name != property && !strings.HasPrefix(name, property+".") {
			kept = append(kept, name)
		}
	}
	return kept
}

// filterRequired drops nested paths and foreign-key-like names.
func filterRequired(names []string) []string {
	var kept []string
	for _, name := range names {
		if domain.SeparatorCount(name) > maxSeparators {
			continue
		}
		if strings.HasSuffix(name, "Id") || strings.HasSuffix(name, "_id") {
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

// filterMethods drops deeply nested accessors and orders the rest by kind,
// then by name.
func filterMethods(methods []domain.ModelMethodDescriptor) []domain.ModelMethodDescriptor {
	var kept []domain.ModelMethodDescriptor
	for _, method := range methods {
		if domain.SeparatorCount(method.Name) > maxSeparators {
			continue
		}
		kept = append(kept, method)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Kind != kept[j].Kind {
			return kept[i].Kind < kept[j].Kind
		}
		return kept[i].Name < kept[j].Name
	})
	return kept
}
