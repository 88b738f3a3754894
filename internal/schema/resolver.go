package schema

import (
	"fmt"
	"sort"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-httpgen/internal/domain"
)

// Resolve maps a schema node to its normalized type.
func Resolve(s *spec.Schema) (domain.TypeDescriptor, error) {
	kind, err := KindOf(s)
	if err != nil {
		return domain.TypeDescriptor{}, err
	}

	switch kind {
	case KindRef, KindObject:
		return domain.Relationship(""), nil
	case KindBoolean:
		return domain.Bool, nil
	case KindString:
		return domain.String, nil
	case KindArray:
		return ResolveArray(s), nil
	case KindNumber, KindInteger:
		return ResolveNumber(s, kind)
	}

	return domain.TypeDescriptor{}, fmt.Errorf("%w: %s", domain.ErrUnresolvableSchema, Describe(s))
}

// ResolveArray resolves an array node. The array is a named relationship when
// a sibling keyword carries a name or when its items point at a definition.
func ResolveArray(s *spec.Schema) domain.TypeDescriptor {
	if name := siblingName(s); name != "" {
		return domain.Relationship(name)
	}

	if s.Items != nil && s.Items.Schema != nil && IsRefSchema(s.Items.Schema) {
		return domain.Relationship(RefName(s.Items.Schema.Ref))
	}

	return domain.Array
}

// ResolveNumber resolves a number or integer node from its format.
func ResolveNumber(s *spec.Schema, kind Kind) (domain.TypeDescriptor, error) {
	switch s.Format {
	case "":
		if kind == KindInteger {
			return domain.Int, nil
		}
		return domain.Float, nil
	case "float", "double":
		return domain.Float, nil
	case "int32", "int64":
		return domain.Int, nil
	}

	return domain.TypeDescriptor{}, fmt.Errorf("%w: format %q not supported for %s in %s",
		domain.ErrUnresolvableSchema, s.Format, kind, Describe(s))
}

// ResolvePrimitive maps a simple parameter type and format. Unknown types are
// opaque and unknown numeric formats fall back to the type's default.
func ResolvePrimitive(typeName, format string) domain.TypeDescriptor {
	switch typeName {
	case STRING:
		return domain.String
	case BOOLEAN, "bool":
		return domain.Bool
	case INTEGER, NUMBER:
		switch format {
		case "float", "double":
			return domain.Float
		case "int32", "int64":
			return domain.Int
		}
		if typeName == NUMBER && format == "" {
			return domain.Float
		}
		return domain.Int
	case ARRAY:
		return domain.Array
	}
	return domain.Mixed
}

// siblingName looks for a non-empty name on the xml object, on extra keywords
// and on vendor extensions, in that order.
func siblingName(s *spec.Schema) string {
	if s.XML != nil && s.XML.Name != "" {
		return s.XML.Name
	}

	for _, props := range []map[string]interface{}{s.ExtraProps, s.Extensions} {
		keys := make([]string, 0, len(props))
		for k := range props {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			switch k {
			case "type", "description", "items":
				continue
			}
			if name := nameMember(props[k]); name != "" {
				return name
			}
		}
	}

	return ""
}

func nameMember(v interface{}) string {
	m, ok := v.(map[string]interface{})
	if !ok {
		return ""
	}
	name, _ := m["name"].(string)
	return name
}
