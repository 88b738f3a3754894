// Package domain contains the intermediate representation shared across the
// generator: normalized type descriptors, argument, method, shape and model
// descriptors, plus the error taxonomy every resolver reports through.
package domain

import (
	"fmt"
	"strings"
)

// TypeKind enumerates the normalized types a schema node can resolve to.
type TypeKind int

const (
	// TypeBool represents a boolean value.
	TypeBool TypeKind = iota + 1
	// TypeString represents a string value.
	TypeString
	// TypeInt represents an integer value.
	TypeInt
	// TypeFloat represents a floating point value.
	TypeFloat
	// TypeMixed represents an opaque value.
	TypeMixed
	// TypeArray represents a plain list.
	TypeArray
	// TypeRelationship represents a related entity, optionally named.
	TypeRelationship
	// TypeDefinitionRef represents a reference to a named definition.
	TypeDefinitionRef
)

var typeKindNames = map[TypeKind]string{
	TypeBool:          "bool",
	TypeString:        "string",
	TypeInt:           "int",
	TypeFloat:         "float",
	TypeMixed:         "mixed",
	TypeArray:         "array",
	TypeRelationship:  "relationship",
	TypeDefinitionRef: "definition",
}

// String returns the textual name of the kind.
func (k TypeKind) String() string {
	if name, ok := typeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

// TypeDescriptor is the normalized output of schema resolution.
// Name is set for named relationships and definition references.
type TypeDescriptor struct {
	Kind TypeKind
	Name string
}

// Convenience constructors.
var (
	Bool   = TypeDescriptor{Kind: TypeBool}
	String = TypeDescriptor{Kind: TypeString}
	Int    = TypeDescriptor{Kind: TypeInt}
	Float  = TypeDescriptor{Kind: TypeFloat}
	Mixed  = TypeDescriptor{Kind: TypeMixed}
	Array  = TypeDescriptor{Kind: TypeArray}
)

// Relationship returns a relationship descriptor. An empty name means the
// relationship target could not be identified from the schema alone.
func Relationship(name string) TypeDescriptor {
	return TypeDescriptor{Kind: TypeRelationship, Name: name}
}

// DefinitionRef returns a descriptor referencing the named definition.
func DefinitionRef(name string) TypeDescriptor {
	return TypeDescriptor{Kind: TypeDefinitionRef, Name: name}
}

// IsNamedRelationship reports whether t is a relationship with a known target.
func (t TypeDescriptor) IsNamedRelationship() bool {
	return t.Kind == TypeRelationship && t.Name != ""
}

// IsRelationship reports whether t is any relationship.
func (t TypeDescriptor) IsRelationship() bool {
	return t.Kind == TypeRelationship
}


// String renders the descriptor as "kind" or "kind:Name".
func (t TypeDescriptor) String() string {
	if t.Name == "" {
		return t.Kind.String()
	}
	return t.Kind.String() + ":" + t.Name
}

// MarshalText implements encoding.TextMarshaler.
func (t TypeDescriptor) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypeDescriptor) UnmarshalText(text []byte) error {
	kindName, name, _ := strings.Cut(string(text), ":")
	for kind, n := range typeKindNames {
		if n == kindName {
			*t = TypeDescriptor{Kind: kind, Name: name}
			return nil
		}
	}
	return fmt.Errorf("unknown type descriptor %q", string(text))
}

// Location is where an argument travels in the request.
type Location string

const (
	// LocationQuery is a query string argument.
	LocationQuery Location = "query"
	// LocationHeader is a request header argument.
	LocationHeader Location = "header"
	// LocationPath is interpolated into the route.
	LocationPath Location = "path"
	// LocationBody is sent in the request body.
	LocationBody Location = "body"
	// LocationCookie is sent as a cookie.
	LocationCookie Location = "cookie"
)

// Locations lists the accepted argument locations.
var Locations = []Location{LocationQuery, LocationHeader, LocationPath, LocationBody, LocationCookie}

// ParseLocation validates a raw location value.
func ParseLocation(raw string) (Location, bool) {
	for _, loc := range Locations {
		if string(loc) == raw {
			return loc, true
		}
	}
	return "", false
}
