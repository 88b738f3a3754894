package route

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-httpgen/internal/console"
	"github.com/griffnb/core-httpgen/internal/domain"
	"github.com/griffnb/core-httpgen/internal/schema"
	routedomain "github.com/griffnb/core-httpgen/internal/parser/route/domain"
)

// ResolveRoute resolves an enumerated route
func (s *Service) ResolveRoute(route *routedomain.Route) (*domain.MethodDescriptor, error) {
	return s.ResolveMethod(route.Path, route.Method, route.Operation, route.PathParameters)
}

// ResolveMethod builds the method descriptor of one operation. It returns
// nil without error when the operation is deprecated and skipping is enabled.
func (s *Service) ResolveMethod(path, verb string, op *spec.Operation, pathParams []spec.Parameter) (*domain.MethodDescriptor, error) {
	if op == nil {
		return nil, fmt.Errorf("no operation declared for %s %s", strings.ToUpper(verb), path)
	}

	if op.Deprecated && s.skipDeprecated {
		console.Logger.Debug("skipping deprecated operation %s %s", strings.ToUpper(verb), path)
		return nil, nil
	}

	if strings.TrimSpace(op.ID) == "" {
		return nil, fmt.Errorf("%w: operation %s %s has no operationId", domain.ErrMissingIdentity, strings.ToUpper(verb), path)
	}

	name := domain.Camel(op.ID)

	params, err := s.operationParameters(pathParams, op.Parameters)
	if err != nil {
		return nil, fmt.Errorf("method %s: %w", name, err)
	}

	args, err := ResolveArguments(s.lookup, params)
	if err != nil {
		return nil, fmt.Errorf("method %s: %w", name, err)
	}

	// arguments without a default come first, declaration order kept otherwise
	sort.SliceStable(args, func(i, j int) bool {
		return !args[i].HasDefault && args[j].HasDefault
	})

	method := &domain.MethodDescriptor{
		Name:      name,
		Path:      strings.Trim(path, "/"),
		Verb:      strings.ToLower(verb),
		Summary:   strings.TrimSpace(op.Summary),
		Produces:  s.produces(op),
		Arguments: args,
		Template:  bindPathArguments(domain.NewPathTemplate(path), args),
	}
	method.Attributes = attributeBuckets(args)

	response, err := s.successResponse(op)
	if err != nil {
		return nil, fmt.Errorf("method %s: %w", name, err)
	}
	if response != nil && response.Schema != nil {
		shape, err := s.ResolveShape(response.Schema, name)
		if err != nil {
			return nil, err
		}
		method.AttachResponse(shape)
	}

	return method, nil
}

func (s *Service) operationParameters(pathParams, opParams []spec.Parameter) ([]spec.Parameter, error) {
	shared, err := s.dereferenceParameters(pathParams)
	if err != nil {
		return nil, err
	}
	own, err := s.dereferenceParameters(opParams)
	if err != nil {
		return nil, err
	}
	return mergeParameters(shared, own), nil
}

func (s *Service) produces(op *spec.Operation) []string {
	if len(op.Produces) > 0 {
		return op.Produces
	}
	return s.defaultProduces
}

// successResponse returns the 200 response, following a shared response reference
func (s *Service) successResponse(op *spec.Operation) (*spec.Response, error) {
	if op.Responses == nil {
		return nil, nil
	}

	response, ok := op.Responses.StatusCodeResponses[http.StatusOK]
	if !ok {
		return nil, nil
	}

	if response.Ref.String() == "" {
		return &response, nil
	}

	refName, ok := schema.ResponseName(response.Ref)
	if !ok {
		refName = schema.RefName(response.Ref)
	}
	shared, found := s.lookup.Response(refName)
	if !found {
		return nil, fmt.Errorf("%w: shared response %q", domain.ErrMissingDefinition, response.Ref.String())
	}
	return shared, nil
}

func bindPathArguments(template domain.PathTemplate, args []domain.ArgumentDescriptor) domain.PathTemplate {
	for _, arg := range args {
		if arg.Location == domain.LocationPath {
			template = template.Bind(arg.Name)
		}
	}
	return template
}

// attributeBuckets groups non-path arguments per location, empty buckets omitted
func attributeBuckets(args []domain.ArgumentDescriptor) []domain.AttributeBucket {
	var buckets []domain.AttributeBucket
	for _, location := range domain.AttributeLocations {
		var names []string
		for _, arg := range args {
			if arg.Location == location {
				names = append(names, arg.Name)
			}
		}
		if len(names) > 0 {
			buckets = append(buckets, domain.AttributeBucket{Location: location, Arguments: names})
		}
	}
	return buckets
}
