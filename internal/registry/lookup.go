package registry

import "github.com/griffnb/core-httpgen/internal/domain"

// Methods returns the methods in insertion order.
func (s *Service) Methods() []*domain.MethodDescriptor {
	out := make([]*domain.MethodDescriptor, len(s.methods))
	copy(out, s.methods)
	return out
}

// Models returns the models in insertion order.
func (s *Service) Models() []*domain.ModelDescriptor {
	out := make([]*domain.ModelDescriptor, len(s.models))
	copy(out, s.models)
	return out
}

// Method returns the named method.
func (s *Service) Method(name string) (*domain.MethodDescriptor, bool) {
	i, ok := s.methodIndex[name]
	if !ok {
		return nil, false
	}
	return s.methods[i], true
}

// Model returns the named model.
func (s *Service) Model(name string) (*domain.ModelDescriptor, bool) {
	i, ok := s.modelIndex[name]
	if !ok {
		return nil, false
	}
	return s.models[i], true
}
