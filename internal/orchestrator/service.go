// Package orchestrator coordinates all services to compile an API description
// into a resource graph. It loads the document, builds the resolution
// context, fans resolution out over the operations and definitions, and
// merges the results in declaration order.
package orchestrator

import (
	"fmt"
	"runtime"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-httpgen/internal/loader"
	"github.com/griffnb/core-httpgen/internal/parser/route"
	"github.com/griffnb/core-httpgen/internal/registry"
)

// Service coordinates loading and resolution.
type Service struct {
	loader *loader.Service
	config *Config
}

// Config holds orchestrator configuration options.
type Config struct {
	// ClientName overrides the document title as the client's name.
	ClientName string
	// ConfigKey overrides the key derived from the client name.
	ConfigKey      string
	Authentication string

	// IncludeDeprecated resolves deprecated operations instead of skipping them.
	IncludeDeprecated bool

	MaxShapeDepth int
	Concurrency   int
	Debug         Debugger
}

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

type noOpDebugger struct{}

func (noOpDebugger) Printf(string, ...interface{}) {}

// New creates a new orchestrator service with the given configuration.
func New(config *Config) *Service {
	if config == nil {
		config = &Config{}
	}

	// Apply defaults for zero values
	if config.MaxShapeDepth <= 0 {
		config.MaxShapeDepth = route.MaxShapeDepth
	}
	if config.Concurrency <= 0 {
		config.Concurrency = runtime.NumCPU()
	}
	if config.Debug == nil {
		config.Debug = noOpDebugger{}
	}

	return &Service{
		loader: loader.NewService(loader.WithDebugger(config.Debug)),
		config: config,
	}
}

// Parse loads the document at path and resolves it.
func (s *Service) Parse(path string) (*registry.Service, error) {
	s.config.Debug.Printf("Orchestrator: Step 1 - Loading %s", path)

	result, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	return s.Resolve(result.Document)
}

// Resolve compiles a loaded document into a sealed resource graph. Any
// resolution error aborts the whole batch.
func (s *Service) Resolve(doc *spec.Swagger) (*registry.Service, error) {
	s.config.Debug.Printf("Orchestrator: Step 2 - Deriving client identity")

	identity, err := deriveIdentity(s.config, doc)
	if err != nil {
		return nil, err
	}

	ctx := NewContext(doc)
	routeService := route.NewService(ctx)
	routeService.SetSkipDeprecated(!s.config.IncludeDeprecated)
	routeService.SetDefaultProduces(ctx.Produces())
	routeService.SetMaxShapeDepth(s.config.MaxShapeDepth)

	routes := route.EnumerateRoutes(doc.Paths)
	s.config.Debug.Printf("Orchestrator: Step 3 - Resolving %d operations (parallel, limit=%d)", len(routes), s.config.Concurrency)

	methods, err := s.resolveRoutesParallel(routeService, routes)
	if err != nil {
		return nil, err
	}

	names := ctx.DefinitionNames()
	s.config.Debug.Printf("Orchestrator: Step 4 - Resolving %d definitions (parallel, limit=%d)", len(names), s.config.Concurrency)

	models, err := s.resolveModelsParallel(ctx, names)
	if err != nil {
		return nil, err
	}

	s.config.Debug.Printf("Orchestrator: Step 5 - Building resource graph")

	graph := registry.NewService(identity)
	graph.SetDebugger(s.config.Debug)

	for _, method := range methods {
		if err := graph.AddMethod(method); err != nil {
			return nil, err
		}
	}
	for _, model := range models {
		if err := graph.AddModel(model); err != nil {
			return nil, err
		}
	}
	graph.Seal()

	for name, source := range UnmodeledReferences(graph) {
		s.config.Debug.Printf("Orchestrator: definition %s referenced by %s has no model", name, source)
	}

	s.config.Debug.Printf("Orchestrator: Resolved %d methods and %d models", len(methods), len(models))

	return graph, nil
}
