package loader

import (
	"errors"

	"github.com/go-openapi/spec"
)

// ErrInvalidFormat reports a document that is not a Swagger 2.x description.
var ErrInvalidFormat = errors.New("invalid document format")

// Format is the serialization a document was read from.
type Format string

const (
	// FormatJSON is a JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// Service handles loading API description documents
type Service struct {
	extensions map[string]Format
	maxSize    int64
	debug      Debugger
}

// Debugger interface for logging
type Debugger interface {
	Printf(format string, v ...interface{})
}

// LoadResult contains a loaded document and where it came from
type LoadResult struct {
	Document *spec.Swagger
	Path     string
	Format   Format
}

// Option is a functional option for configuring Service
type Option func(*Service)

// noOpDebugger is a no-op debugger
type noOpDebugger struct{}

func (n *noOpDebugger) Printf(format string, v ...interface{}) {}
