package domain

import (
	"fmt"
	"strings"
)

// ArgumentDescriptor describes one argument of a generated method.
type ArgumentDescriptor struct {
	Name        string         `json:"name"`
	Type        TypeDescriptor `json:"type"`
	Required    bool           `json:"required"`
	HasDefault  bool           `json:"hasDefault"`
	Default     interface{}    `json:"default,omitempty"`
	Description string         `json:"description,omitempty"`
	Location    Location       `json:"location"`
}

// NewArgument validates the location and builds an argument without a default.
func NewArgument(name string, typ TypeDescriptor, required bool, description, location string) (ArgumentDescriptor, error) {
	loc, ok := ParseLocation(location)
	if !ok {
		return ArgumentDescriptor{}, fmt.Errorf(
			"%w: argument %q declares location %q, allowed values: query, header, path, body, cookie",
			ErrInvalidArgumentLocation, name, location,
		)
	}

	return ArgumentDescriptor{
		Name:        name,
		Type:        typ,
		Required:    required,
		Description: strings.TrimSpace(description),
		Location:    loc,
	}, nil
}

// WithDefault returns a copy of the argument carrying a default value.
func (a ArgumentDescriptor) WithDefault(value interface{}) ArgumentDescriptor {
	a.HasDefault = true
	a.Default = value
	return a
}

// SignatureType is the type used in a generated call signature. References
// to other entities are never surfaced as concrete nested types there.
func (a ArgumentDescriptor) SignatureType() TypeDescriptor {
	if a.Type.Kind == TypeDefinitionRef || a.Type.Kind == TypeRelationship {
		return Mixed
	}
	return a.Type
}

// Nullable reports whether the signature type accepts a "no value".
func (a ArgumentDescriptor) Nullable() bool {
	return !a.Required && a.SignatureType().Kind != TypeMixed
}

// DefaultsToNull reports whether the argument gets an explicit null default.
func (a ArgumentDescriptor) DefaultsToNull() bool {
	return !a.Required && !a.HasDefault
}
