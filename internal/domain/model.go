package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ModelMethodKind is the kind of an accessor generated on a model.
type ModelMethodKind int

// Declaration order is the emit order.
const (
	AttributeMethod ModelMethodKind = iota + 1
	HasOneMethod
	HasManyMethod
)

func (k ModelMethodKind) String() string {
	switch k {
	case AttributeMethod:
		return "attribute"
	case HasOneMethod:
		return "hasOne"
	case HasManyMethod:
		return "hasMany"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k ModelMethodKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ModelMethodDescriptor describes one accessor on a generated model.
type ModelMethodDescriptor struct {
	// Name is the source property name.
	Name       string          `json:"name"`
	Kind       ModelMethodKind `json:"kind"`
	ReturnType string          `json:"returnType"`

	// Target is the related model for relationship methods.
	Target string `json:"target,omitempty"`
}

// AccessorName is the generated method name: pluralized for hasMany,
// lower-cased when the property is all caps, lowerCamel otherwise.
func (m ModelMethodDescriptor) AccessorName() string {
	name := m.Name
	if m.Kind == HasManyMethod {
		name = Plural(name)
	}
	if cases.Upper(language.Und).String(name) == name {
		return cases.Lower(language.Und).String(name)
	}
	return Camel(name)
}

// Cast maps a property to the scalar type it is cast to.
type Cast struct {
	Property string         `json:"property"`
	Type     TypeDescriptor `json:"type"`
}

// ModelDescriptor describes one generated data model.
type ModelDescriptor struct {
	Name          string                  `json:"name"`
	Casts         []Cast                  `json:"casts,omitempty"`
	Relationships []string                `json:"relationships,omitempty"`
	Required      []string                `json:"required,omitempty"`
	Methods       []ModelMethodDescriptor `json:"methods,omitempty"`
}

// Method returns the accessor built from the named property.
func (m *ModelDescriptor) Method(name string) (ModelMethodDescriptor, bool) {
	for _, method := range m.Methods {
		if method.Name == name {
			return method, true
		}
	}
	return ModelMethodDescriptor{}, false
}

// Cast returns the cast recorded for the property.
func (m *ModelDescriptor) Cast(property string) (TypeDescriptor, bool) {
	for _, c := range m.Casts {
		if c.Property == property {
			return c.Type, true
		}
	}
	return TypeDescriptor{}, false
}
