// Package route resolves the operations of an API description into method
// descriptors: arguments, path templates, attribute buckets and the typed
// response shape of each operation.
package route

import (
	"github.com/go-openapi/spec"
)

// MaxShapeDepth bounds how deep a response shape is expanded.
const MaxShapeDepth = 10

// MaxShapeNodes is the number of schema nodes a response shape may visit
// before repeated definitions stop being inlined.
const MaxShapeNodes = 512

// DefinitionLookup provides access to the document's named components
type DefinitionLookup interface {
	Definition(name string) (*spec.Schema, bool)
	Parameter(name string) (*spec.Parameter, bool)
	Response(name string) (*spec.Response, bool)
}

// Service handles resolution of operations into method descriptors.
// It holds no mutable state once configured and is safe for concurrent use.
type Service struct {
	lookup          DefinitionLookup
	skipDeprecated  bool
	defaultProduces []string
	maxShapeDepth   int
	maxShapeNodes   int
}

// NewService creates a new route resolver service
func NewService(lookup DefinitionLookup) *Service {
	return &Service{
		lookup:         lookup,
		skipDeprecated: true,
		maxShapeDepth:  MaxShapeDepth,
		maxShapeNodes:  MaxShapeNodes,
	}
}

// SetSkipDeprecated sets whether deprecated operations produce no method
func (s *Service) SetSkipDeprecated(skip bool) {
	s.skipDeprecated = skip
}

// SetDefaultProduces sets the media types used when an operation declares none
func (s *Service) SetDefaultProduces(produces []string) {
	s.defaultProduces = produces
}

// SetMaxShapeDepth sets the expansion depth after which definitions are no
// longer inlined into response shapes
func (s *Service) SetMaxShapeDepth(depth int) {
	if depth > 0 {
		s.maxShapeDepth = depth
	}
}
