package schema

import (
	"strings"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-httpgen/internal/domain"
)

// IsRefSchema determines whether the schema carries a $ref.
func IsRefSchema(s *spec.Schema) bool {
	return s != nil && s.Ref.String() != ""
}

// RefName returns the last token of a reference.
func RefName(ref spec.Ref) string {
	if ptr := ref.GetPointer(); ptr != nil {
		if tokens := ptr.DecodedTokens(); len(tokens) > 0 {
			return tokens[len(tokens)-1]
		}
	}
	return domain.RefBasename(ref.String())
}

// DefinitionName returns the definition a local reference points at.
func DefinitionName(ref spec.Ref) (string, bool) {
	return localName(ref, "definitions")
}

// ParameterName returns the shared parameter a local reference points at.
func ParameterName(ref spec.Ref) (string, bool) {
	return localName(ref, "parameters")
}

// ResponseName returns the shared response a local reference points at.
func ResponseName(ref spec.Ref) (string, bool) {
	return localName(ref, "responses")
}

func localName(ref spec.Ref, section string) (string, bool) {
	raw := ref.String()
	if !strings.HasPrefix(raw, "#/") {
		return "", false
	}
	ptr := ref.GetPointer()
	if ptr == nil {
		return "", false
	}
	tokens := ptr.DecodedTokens()
	if len(tokens) != 2 || tokens[0] != section || tokens[1] == "" {
		return "", false
	}
	return tokens[1], true
}

// CollectRefs returns the distinct references found below s, in walk order.
// References are recorded, not followed; s's own reference is not included.
func CollectRefs(s *spec.Schema) []string {
	if s == nil {
		return nil
	}

	seen := map[string]bool{}
	var refs []string

	var walk func(node *spec.Schema)
	visitChild := func(child *spec.Schema) {
		if child == nil {
			return
		}
		if IsRefSchema(child) {
			raw := child.Ref.String()
			if !seen[raw] {
				seen[raw] = true
				refs = append(refs, raw)
			}
			return
		}
		walk(child)
	}

	walk = func(node *spec.Schema) {
		for _, item := range node.Properties.ToOrderedSchemaItems() {
			item := item
			visitChild(&item.Schema)
		}
		if node.Items != nil {
			visitChild(node.Items.Schema)
			for i := range node.Items.Schemas {
				visitChild(&node.Items.Schemas[i])
			}
		}
		if node.AdditionalProperties != nil {
			visitChild(node.AdditionalProperties.Schema)
		}
		for i := range node.AllOf {
			visitChild(&node.AllOf[i])
		}
		for i := range node.AnyOf {
			visitChild(&node.AnyOf[i])
		}
		for i := range node.OneOf {
			visitChild(&node.OneOf[i])
		}
	}

	walk(s)
	return refs
}
