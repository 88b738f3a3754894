package route

import (
	"fmt"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-httpgen/internal/domain"
	"github.com/griffnb/core-httpgen/internal/schema"
)

// ResolveShape resolves a response schema into a shape tree. method names
// the operation in errors.
func (s *Service) ResolveShape(node *spec.Schema, method string) (*domain.ShapeNode, error) {
	w := &shapeWalk{
		Service:  s,
		method:   method,
		expanded: make(map[string]struct{}),
	}
	return w.resolve(node, nil)
}

// shapeWalk carries the state of a single ResolveShape call. Once nodes
// passes the service's node budget, definitions that were already expanded
// elsewhere in the tree are emitted as reference leaves.
type shapeWalk struct {
	*Service
	method   string
	expanded map[string]struct{}
	nodes    int
}

// resolve expands node. ancestors holds the definitions on the current
// expansion path; a definition met again is emitted as a reference leaf.
func (w *shapeWalk) resolve(node *spec.Schema, ancestors []string) (*domain.ShapeNode, error) {
	w.nodes++

	kind, err := schema.KindOf(node)
	if err != nil {
		return nil, fmt.Errorf("method %s: %w", w.method, err)
	}

	switch kind {
	case schema.KindRef:
		return w.resolveDefinition(node.Ref, ancestors)

	case schema.KindObject:
		items := node.Properties.ToOrderedSchemaItems()
		props := make([]domain.ShapeProperty, 0, len(items))
		for _, item := range items {
			item := item
			child, err := w.resolve(&item.Schema, ancestors)
			if err != nil {
				return nil, err
			}
			props = append(props, domain.ShapeProperty{Name: item.Name, Shape: child})
		}
		return domain.ObjectShape(props...), nil

	case schema.KindArray:
		if node.Items == nil || node.Items.Schema == nil {
			return domain.ArrayShape(domain.LeafShape(domain.Mixed)), nil
		}
		element, err := w.resolve(node.Items.Schema, ancestors)
		if err != nil {
			return nil, err
		}
		return domain.ArrayShape(element), nil

	case schema.KindBoolean:
		return domain.LeafShape(domain.Bool), nil

	case schema.KindString:
		return domain.LeafShape(domain.String), nil

	case schema.KindNumber, schema.KindInteger:
		typ, err := schema.ResolveNumber(node, kind)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", w.method, err)
		}
		return domain.LeafShape(typ), nil
	}

	return nil, fmt.Errorf("method %s: %w: %s", w.method, domain.ErrUnresolvableSchema, schema.Describe(node))
}

func (w *shapeWalk) resolveDefinition(ref spec.Ref, ancestors []string) (*domain.ShapeNode, error) {
	name, ok := schema.DefinitionName(ref)
	if !ok {
		name = schema.RefName(ref)
	}

	definition, found := w.lookup.Definition(name)
	if !found {
		return nil, fmt.Errorf("%w: method %s references definition %q", domain.ErrMissingDefinition, w.method, name)
	}

	_, seen := w.expanded[name]
	if len(ancestors) >= w.maxShapeDepth || contains(ancestors, name) || (seen && w.nodes > w.maxShapeNodes) {
		leaf := domain.LeafShape(domain.DefinitionRef(name))
		leaf.Ref = name
		return leaf, nil
	}
	w.expanded[name] = struct{}{}

	path := make([]string, len(ancestors), len(ancestors)+1)
	copy(path, ancestors)
	path = append(path, name)

	shape, err := w.resolve(definition, path)
	if err != nil {
		return nil, err
	}

	expanded := *shape
	expanded.Ref = name
	return &expanded, nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
