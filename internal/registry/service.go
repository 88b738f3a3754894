// Package registry holds the resource graph: every resolved method and model
// of one document plus the identity of the client generated from it. Names
// are unique per kind and insertion order is preserved.
package registry

import (
	"errors"
	"fmt"

	"github.com/griffnb/core-httpgen/internal/domain"
)

// ErrSealed reports an insert after the resolution phase ended.
var ErrSealed = errors.New("resource graph is sealed")

// Service is the resource graph. It is built by a single goroutine and is
// read-only once sealed.
type Service struct {
	identity Identity

	methods     []*domain.MethodDescriptor
	methodIndex map[string]int

	models     []*domain.ModelDescriptor
	modelIndex map[string]int

	sealed bool
	debug  Debugger
}

// NewService creates an empty resource graph for the given client identity.
func NewService(identity Identity) *Service {
	return &Service{
		identity:    identity,
		methodIndex: make(map[string]int),
		modelIndex:  make(map[string]int),
		debug:       noOpDebugger{},
	}
}

// SetDebugger sets the debugger.
func (s *Service) SetDebugger(debug Debugger) {
	if debug != nil {
		s.debug = debug
	}
}

// AddMethod inserts a method. A method whose name is already taken is
// rejected and the first one is kept.
func (s *Service) AddMethod(method *domain.MethodDescriptor) error {
	if s.sealed {
		return fmt.Errorf("%w: cannot add method %s", ErrSealed, method.Name)
	}
	if _, exists := s.methodIndex[method.Name]; exists {
		return fmt.Errorf("%w: method %s (%s %s) is declared more than once", domain.ErrDuplicateName, method.Name, method.Verb, method.Path)
	}

	s.methodIndex[method.Name] = len(s.methods)
	s.methods = append(s.methods, method)
	s.debug.Printf("registry: added method %s", method.Name)
	return nil
}

// AddModel inserts a model. A model whose name is already taken is rejected
// and the first one is kept.
func (s *Service) AddModel(model *domain.ModelDescriptor) error {
	if s.sealed {
		return fmt.Errorf("%w: cannot add model %s", ErrSealed, model.Name)
	}
	if _, exists := s.modelIndex[model.Name]; exists {
		return fmt.Errorf("%w: model %s is declared more than once", domain.ErrDuplicateName, model.Name)
	}

	s.modelIndex[model.Name] = len(s.models)
	s.models = append(s.models, model)
	s.debug.Printf("registry: added model %s", model.Name)
	return nil
}

// Seal ends the resolution phase.
func (s *Service) Seal() {
	s.sealed = true
}
