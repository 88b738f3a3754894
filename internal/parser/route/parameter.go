package route

import (
	"fmt"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-httpgen/internal/domain"
	"github.com/griffnb/core-httpgen/internal/schema"
)

// ResolveArguments resolves parameters into argument descriptors, keeping
// declaration order. Parameter references must already be dereferenced.
func ResolveArguments(lookup DefinitionLookup, params []spec.Parameter) ([]domain.ArgumentDescriptor, error) {
	args := make([]domain.ArgumentDescriptor, 0, len(params))
	for _, param := range params {
		arg, err := ResolveArgument(lookup, param)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// ResolveArgument resolves a single parameter
func ResolveArgument(lookup DefinitionLookup, param spec.Parameter) (domain.ArgumentDescriptor, error) {
	typ, err := argumentType(lookup, param)
	if err != nil {
		return domain.ArgumentDescriptor{}, err
	}

	arg, err := domain.NewArgument(param.Name, typ, param.Required, param.Description, param.In)
	if err != nil {
		return domain.ArgumentDescriptor{}, err
	}

	switch {
	case param.Default != nil:
		arg = arg.WithDefault(param.Default)
	case param.Schema != nil && param.Schema.Default != nil:
		arg = arg.WithDefault(param.Schema.Default)
	}

	return arg, nil
}

// argumentType maps a parameter onto its normalized type. Inline schemas
// use their declared type; referenced schemas must name a known definition.
func argumentType(lookup DefinitionLookup, param spec.Parameter) (domain.TypeDescriptor, error) {
	if param.Schema == nil {
		return schema.ResolvePrimitive(param.Type, param.Format), nil
	}

	if schema.IsRefSchema(param.Schema) {
		name, ok := schema.DefinitionName(param.Schema.Ref)
		if !ok {
			name = schema.RefName(param.Schema.Ref)
		}
		if _, found := lookup.Definition(name); !found {
			return domain.TypeDescriptor{}, fmt.Errorf("%w: parameter %q references definition %q",
				domain.ErrMissingDefinition, param.Name, name)
		}
		return domain.DefinitionRef(name), nil
	}

	var typeName string
	if len(param.Schema.Type) > 0 {
		typeName = param.Schema.Type[0]
	}
	return schema.ResolvePrimitive(typeName, param.Schema.Format), nil
}

// dereferenceParameter replaces a shared parameter reference with its target
func (s *Service) dereferenceParameter(param spec.Parameter) (spec.Parameter, error) {
	if param.Ref.String() == "" {
		return param, nil
	}

	name, ok := schema.ParameterName(param.Ref)
	if !ok {
		name = schema.RefName(param.Ref)
	}
	target, found := s.lookup.Parameter(name)
	if !found {
		return spec.Parameter{}, fmt.Errorf("%w: shared parameter %q", domain.ErrMissingDefinition, param.Ref.String())
	}
	return *target, nil
}

func (s *Service) dereferenceParameters(params []spec.Parameter) ([]spec.Parameter, error) {
	out := make([]spec.Parameter, 0, len(params))
	for _, p := range params {
		resolved, err := s.dereferenceParameter(p)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}
