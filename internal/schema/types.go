// Package schema maps raw Swagger schema nodes onto the normalized type
// descriptors used by the rest of the generator. Everything here is pure: no
// state, no I/O.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-httpgen/internal/domain"
)

const (
	// ARRAY represent a array value.
	ARRAY = "array"
	// OBJECT represent a object value.
	OBJECT = "object"
	// BOOLEAN represent a boolean value.
	BOOLEAN = "boolean"
	// INTEGER represent a integer value.
	INTEGER = "integer"
	// NUMBER represent a number value.
	NUMBER = "number"
	// STRING represent a string value.
	STRING = "string"
)

// Kind is the closed set of schema node shapes the resolvers understand.
type Kind int

const (
	// KindRef is a node carrying a $ref.
	KindRef Kind = iota + 1
	KindBoolean
	KindString
	KindNumber
	KindInteger
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindRef:
		return "$ref"
	case KindBoolean:
		return BOOLEAN
	case KindString:
		return STRING
	case KindNumber:
		return NUMBER
	case KindInteger:
		return INTEGER
	case KindObject:
		return OBJECT
	case KindArray:
		return ARRAY
	}
	return "unknown"
}

// KindOf classifies a schema node. A $ref wins over any declared type.
func KindOf(s *spec.Schema) (Kind, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: nil schema", domain.ErrUnresolvableSchema)
	}
	if IsRefSchema(s) {
		return KindRef, nil
	}
	if len(s.Type) == 0 {
		return 0, fmt.Errorf("%w: no type declared in %s", domain.ErrUnresolvableSchema, Describe(s))
	}

	switch s.Type[0] {
	case BOOLEAN:
		return KindBoolean, nil
	case STRING:
		return KindString, nil
	case NUMBER:
		return KindNumber, nil
	case INTEGER:
		return KindInteger, nil
	case OBJECT:
		return KindObject, nil
	case ARRAY:
		return KindArray, nil
	}

	return 0, fmt.Errorf("%w: type %q not supported in %s", domain.ErrUnresolvableSchema, s.Type[0], Describe(s))
}

// Describe renders a schema compactly for error messages.
func Describe(s *spec.Schema) string {
	if s == nil {
		return "<nil>"
	}
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Sprintf("%+v", s.SchemaProps)
	}
	return string(b)
}
