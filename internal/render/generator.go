// Package render turns a sealed resource graph into source artifacts: one
// trait per route container, one response class per typed response, one
// class per model and the client connector.
package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/griffnb/core-httpgen/internal/console"
	"github.com/griffnb/core-httpgen/internal/domain"
	"github.com/griffnb/core-httpgen/internal/registry"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultNamespaceRoot prefixes every generated namespace.
	DefaultNamespaceRoot = `App\Http\Clients`

	// DefaultResponseClass is returned by methods without a typed response.
	DefaultResponseClass = `Illuminate\Http\Client\Response`

	defaultContainer = "Default"
)

var nonIdentifier = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// ArtifactKind classifies a generated artifact.
type ArtifactKind string

const (
	ArtifactContainer ArtifactKind = "container"
	ArtifactResponse  ArtifactKind = "response"
	ArtifactModel     ArtifactKind = "model"
	ArtifactClient    ArtifactKind = "client"
)

// Artifact is one generated source file.
type Artifact struct {
	Kind ArtifactKind
	// Name is the class or trait name.
	Name string
	// Path is slash separated and relative to the output directory.
	Path    string
	Content string
}

// Graph is the read-only view of a resource graph the generator needs.
type Graph interface {
	Methods() []*domain.MethodDescriptor
	Models() []*domain.ModelDescriptor
	Model(name string) (*domain.ModelDescriptor, bool)
	ClientName() string
	ConfigKey() string
	Authentication() registry.Authentication
}

// Generator builds artifacts from a resource graph.
type Generator struct {
	renderer      Renderer
	namespaceRoot string
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRenderer replaces the built-in template renderer.
func WithRenderer(r Renderer) GeneratorOption {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithNamespaceRoot sets the namespace every artifact lives under.
func WithNamespaceRoot(root string) GeneratorOption {
	return func(g *Generator) {
		if root = strings.Trim(root, `\ `); root != "" {
			g.namespaceRoot = root
		}
	}
}

// NewGenerator creates a Generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		renderer:      NewTemplateRenderer(),
		namespaceRoot: DefaultNamespaceRoot,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type container struct {
	name    string
	methods []string
	imports map[string]struct{}
}

// Generate renders every artifact of graph. Containers come first in order of
// their first method, then responses, models and finally the client.
func (g *Generator) Generate(graph Graph) ([]Artifact, error) {
	ns := g.namespace(graph.ClientName())
	console.Logger.Debug("Render: namespace %s", ns)

	var (
		containers []*container
		byName     = make(map[string]*container)
		responses  []Artifact
	)

	for _, method := range graph.Methods() {
		name := containerName(method.Path)
		c, ok := byName[name]
		if !ok {
			c = &container{name: name, imports: make(map[string]struct{})}
			byName[name] = c
			containers = append(containers, c)
		}

		values, responseClass := g.methodValues(ns, method)
		text, err := g.renderer.Render(TemplateMethod, values)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", method.Name, err)
		}
		c.methods = append(c.methods, strings.TrimRight(text, "\n"))
		c.imports[responseClass] = struct{}{}

		if responseClass == DefaultResponseClass {
			continue
		}

		response, err := g.response(graph, ns, method)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}

	artifacts := make([]Artifact, 0, len(containers)+len(responses)+len(graph.Models())+2)
	traits := make([]string, 0, len(containers))

	for _, c := range containers {
		imports := make([]string, 0, len(c.imports))
		for class := range c.imports {
			imports = append(imports, "use "+class+";")
		}
		sort.Strings(imports)

		text, err := g.renderer.Render(TemplateContainer, map[string]string{
			"namespace": ns + `\Concerns`,
			"name":      c.name,
			"imports":   strings.Join(imports, "\n"),
			"methods":   strings.Join(c.methods, "\n\n"),
		})
		if err != nil {
			return nil, fmt.Errorf("container %s: %w", c.name, err)
		}

		artifacts = append(artifacts, Artifact{
			Kind:    ArtifactContainer,
			Name:    c.name + "Trait",
			Path:    "Concerns/" + c.name + "Trait.php",
			Content: text,
		})
		traits = append(traits, c.name+"Trait")
	}

	artifacts = append(artifacts, responses...)

	models, err := g.models(graph, ns)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, models...)

	client, err := g.client(graph, ns, traits)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, client)

	console.Logger.Debug("Render: %d artifacts from %d methods and %d models",
		len(artifacts), len(graph.Methods()), len(graph.Models()))

	return artifacts, nil
}

// namespace is the root followed by the first word of the client name.
func (g *Generator) namespace(clientName string) string {
	word := defaultContainer
	if fields := strings.Fields(clientName); len(fields) > 0 {
		word = identifier(cases.Title(language.Und, cases.NoLower).String(fields[0]))
	}
	return g.namespaceRoot + `\` + word
}

// responseClassName is the typed response class of a method.
func responseClassName(method *domain.MethodDescriptor) string {
	return domain.UpperFirst(method.Name) + "Response"
}

// hasTypedResponse reports whether a method gets its own response class.
func hasTypedResponse(method *domain.MethodDescriptor) bool {
	return method.ProducesJSON() && method.Response != nil
}

func (g *Generator) response(graph Graph, ns string, method *domain.MethodDescriptor) (Artifact, error) {
	name := responseClassName(method)

	definition := ""
	if element := method.Response.ElementDefinition(); element != "" {
		if model, ok := graph.Model(domain.Studly(element)); ok {
			definition = model.Name
		}
	}

	text, err := g.renderer.Render(TemplateResponse, map[string]string{
		"namespace":      ns + `\Responses`,
		"modelNamespace": ns + `\Models`,
		"name":           name,
		"shape":          FormatShape(method.Response),
		"definition":     definition,
	})
	if err != nil {
		return Artifact{}, fmt.Errorf("response %s: %w", name, err)
	}

	return Artifact{
		Kind:    ArtifactResponse,
		Name:    name,
		Path:    "Responses/" + name + ".php",
		Content: text,
	}, nil
}

func (g *Generator) client(graph Graph, ns string, traits []string) (Artifact, error) {
	name := identifier(domain.Studly(domain.Slug(graph.ClientName())))

	imports := make([]string, len(traits))
	uses := make([]string, len(traits))
	for i, trait := range traits {
		imports[i] = "use " + ns + `\Concerns\` + trait + ";"
		uses[i] = "    use " + trait + ";"
	}
	sort.Strings(imports)

	text, err := g.renderer.Render(TemplateClient, map[string]string{
		"namespace":      ns,
		"name":           name,
		"configKey":      graph.ConfigKey(),
		"authentication": string(graph.Authentication()),
		"imports":        strings.Join(imports, "\n"),
		"traits":         strings.Join(uses, "\n"),
	})
	if err != nil {
		return Artifact{}, fmt.Errorf("client %s: %w", name, err)
	}

	return Artifact{
		Kind:    ArtifactClient,
		Name:    name + "Client",
		Path:    name + "Client.php",
		Content: text,
	}, nil
}

// containerName is the capitalised first segment of a route.
func containerName(path string) string {
	segment, _, _ := strings.Cut(strings.Trim(path, "/"), "/")
	segment = strings.Trim(segment, "{}")

	name := identifier(domain.Studly(segment))
	if name == "" {
		return defaultContainer
	}
	if name[0] >= '0' && name[0] <= '9' {
		return defaultContainer + name
	}
	return name
}

func identifier(s string) string {
	return nonIdentifier.ReplaceAllString(s, "")
}
