package orchestrator

import (
	"github.com/griffnb/core-httpgen/internal/domain"
	"github.com/griffnb/core-httpgen/internal/registry"
)

// CollectReferencedDefinitions walks all methods and returns the definitions
// referenced by their arguments and response shapes. Values name the method
// where the reference was first encountered.
func CollectReferencedDefinitions(methods []*domain.MethodDescriptor) map[string]string {
	refs := make(map[string]string)
	for _, method := range methods {
		if method == nil {
			continue
		}
		for _, arg := range method.Arguments {
			if arg.Type.Kind == domain.TypeDefinitionRef {
				addRef(refs, arg.Type.Name, method.Name)
			}
		}
		collectRefsFromShape(method.Response, refs, method.Name)
	}
	return refs
}

// collectRefsFromShape recursively walks a shape tree and collects the
// definitions it was expanded from.
func collectRefsFromShape(node *domain.ShapeNode, refs map[string]string, source string) {
	if node == nil {
		return
	}
	if node.Ref != "" {
		addRef(refs, node.Ref, source)
	}
	for _, p := range node.Properties {
		collectRefsFromShape(p.Shape, refs, source)
	}
	collectRefsFromShape(node.Element, refs, source)
}

func addRef(refs map[string]string, name, source string) {
	if _, exists := refs[name]; !exists {
		refs[name] = source
	}
}

// UnmodeledReferences returns the referenced definitions that produced no model.
func UnmodeledReferences(graph *registry.Service) map[string]string {
	missing := make(map[string]string)
	for name, source := range CollectReferencedDefinitions(graph.Methods()) {
		if _, ok := graph.Model(domain.Studly(name)); !ok {
			missing[name] = source
		}
	}
	return missing
}
