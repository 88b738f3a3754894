package route

import (
	"sort"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-httpgen/internal/parser/route/domain"
)

// Verbs is the fixed order operations of one path are enumerated in.
var Verbs = []string{"get", "put", "post", "delete", "options", "head", "patch"}

// EnumerateRoutes lists every operation of paths, paths sorted and verbs in
// Verbs order. Index records that order.
func EnumerateRoutes(paths *spec.Paths) []*domain.Route {
	if paths == nil {
		return nil
	}

	keys := make([]string, 0, len(paths.Paths))
	for path := range paths.Paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	var routes []*domain.Route
	for _, path := range keys {
		item := paths.Paths[path]
		for _, verb := range Verbs {
			op := routeMethodOp(&item, verb)
			if op == nil {
				continue
			}
			routes = append(routes, &domain.Route{
				Index:          len(routes),
				Method:         verb,
				Path:           path,
				Operation:      op,
				PathParameters: item.Parameters,
			})
		}
	}

	return routes
}

// routeMethodOp returns the operation declared for the given verb
func routeMethodOp(item *spec.PathItem, verb string) *spec.Operation {
	switch verb {
	case "get":
		return item.Get
	case "put":
		return item.Put
	case "post":
		return item.Post
	case "delete":
		return item.Delete
	case "options":
		return item.Options
	case "head":
		return item.Head
	case "patch":
		return item.Patch
	default:
		return nil
	}
}

// mergeParameters combines path-level and operation-level parameters.
// An operation parameter replaces a path parameter with the same name and location.
func mergeParameters(pathParams, opParams []spec.Parameter) []spec.Parameter {
	if len(pathParams) == 0 {
		return opParams
	}

	overridden := make(map[string]bool, len(opParams))
	for _, p := range opParams {
		overridden[p.In+":"+p.Name] = true
	}

	merged := make([]spec.Parameter, 0, len(pathParams)+len(opParams))
	for _, p := range pathParams {
		if !overridden[p.In+":"+p.Name] {
			merged = append(merged, p)
		}
	}
	return append(merged, opParams...)
}
