package orchestrator

import (
	"sort"

	"github.com/go-openapi/spec"
)

// Context is the read-only resolution state of one document: the indexed
// definitions, shared parameters and responses, plus document-wide
// defaults. Every resolver receives it explicitly.
type Context struct {
	definitions map[string]*spec.Schema
	parameters  map[string]*spec.Parameter
	responses   map[string]*spec.Response
	produces    []string
}

// NewContext indexes the named components of doc.
func NewContext(doc *spec.Swagger) *Context {
	ctx := &Context{
		definitions: make(map[string]*spec.Schema, len(doc.Definitions)),
		parameters:  make(map[string]*spec.Parameter, len(doc.Parameters)),
		responses:   make(map[string]*spec.Response, len(doc.Responses)),
		produces:    doc.Produces,
	}

	for name := range doc.Definitions {
		definition := doc.Definitions[name]
		ctx.definitions[name] = &definition
	}
	for name := range doc.Parameters {
		parameter := doc.Parameters[name]
		ctx.parameters[name] = &parameter
	}
	for name := range doc.Responses {
		response := doc.Responses[name]
		ctx.responses[name] = &response
	}

	return ctx
}

// Definition returns the named definition.
func (c *Context) Definition(name string) (*spec.Schema, bool) {
	d, ok := c.definitions[name]
	return d, ok
}

// Parameter returns the named shared parameter.
func (c *Context) Parameter(name string) (*spec.Parameter, bool) {
	p, ok := c.parameters[name]
	return p, ok
}

// Response returns the named shared response.
func (c *Context) Response(name string) (*spec.Response, bool) {
	r, ok := c.responses[name]
	return r, ok
}

// DefinitionNames returns the definition names in sorted order.
func (c *Context) DefinitionNames() []string {
	names := make([]string, 0, len(c.definitions))
	for name := range c.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Produces returns the document-wide media types.
func (c *Context) Produces() []string {
	return c.produces
}
