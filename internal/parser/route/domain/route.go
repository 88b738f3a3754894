// Package domain contains domain models for route resolution.
package domain

import (
	"strings"

	"github.com/go-openapi/spec"
)

// Route is one operation enumerated from the document's paths
type Route struct {
	// Index is the declaration order used when merging resolved results
	Index int

	// HTTP method, lower case (get, put, post, ...)
	Method string

	// URL path as declared (e.g., "/users/{id}")
	Path string

	// Operation as declared in the document
	Operation *spec.Operation

	// PathParameters are declared on the path item and shared by its operations
	PathParameters []spec.Parameter
}

func (r *Route) String() string {
	return strings.ToUpper(r.Method) + " " + r.Path
}
