package domain

import "fmt"

// ShapeKind tags a ShapeNode.
type ShapeKind int

const (
	// ShapeLeaf is a primitive value.
	ShapeLeaf ShapeKind = iota + 1
	// ShapeObject is a keyed set of properties.
	ShapeObject
	// ShapeArray is a list of elements.
	ShapeArray
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeLeaf:
		return "leaf"
	case ShapeObject:
		return "object"
	case ShapeArray:
		return "array"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(text []byte) error {
	for _, kind := range []ShapeKind{ShapeLeaf, ShapeObject, ShapeArray} {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown shape kind %q", string(text))
}

// ShapeNode is the recursive structural description of a response body.
type ShapeNode struct {
	Kind ShapeKind `json:"kind"`

	// Type is set on leaves.
	Type TypeDescriptor `json:"type,omitzero"`

	// Properties is set on objects, ordered by name.
	Properties []ShapeProperty `json:"properties,omitempty"`

	// Element is set on arrays.
	Element *ShapeNode `json:"element,omitempty"`

	// Ref is the definition this node was expanded from, if any.
	Ref string `json:"ref,omitempty"`
}

// ShapeProperty is one named member of an object shape.
type ShapeProperty struct {
	Name  string     `json:"name"`
	Shape *ShapeNode `json:"shape"`
}

// LeafShape builds a leaf node.
func LeafShape(t TypeDescriptor) *ShapeNode {
	return &ShapeNode{Kind: ShapeLeaf, Type: t}
}

// ObjectShape builds an object node.
func ObjectShape(props ...ShapeProperty) *ShapeNode {
	return &ShapeNode{Kind: ShapeObject, Properties: props}
}

// ArrayShape builds an array node.
func ArrayShape(element *ShapeNode) *ShapeNode {
	return &ShapeNode{Kind: ShapeArray, Element: element}
}

// Property returns the named property shape, or nil.
func (n *ShapeNode) Property(name string) *ShapeNode {
	if n == nil {
		return nil
	}
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Shape
		}
	}
	return nil
}

// ElementDefinition returns the definition name of an array's element when
// the node is an array of a named definition.
func (n *ShapeNode) ElementDefinition() string {
	if n == nil || n.Kind != ShapeArray || n.Element == nil {
		return ""
	}
	return n.Element.Ref
}
