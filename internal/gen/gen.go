package gen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/griffnb/core-httpgen/internal/console"
	"github.com/griffnb/core-httpgen/internal/domain"
	"github.com/griffnb/core-httpgen/internal/orchestrator"
	"github.com/griffnb/core-httpgen/internal/registry"
	"github.com/griffnb/core-httpgen/internal/render"
	"sigs.k8s.io/yaml"
)

// DefaultInstanceName names the resource graph dumps.
const DefaultInstanceName = "resources"

// Supported output types.
const (
	OutputPHP  = "php"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type genTypeWriter func(*Config, *buildResult) error

// Gen is the generate tool behind the CLI.
type Gen struct {
	json          func(data interface{}) ([]byte, error)
	jsonIndent    func(data interface{}) ([]byte, error)
	jsonToYAML    func(data []byte) ([]byte, error)
	outputTypeMap map[string]genTypeWriter
	debug         Debugger
}

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// New creates a new Gen.
func New() *Gen {
	gen := Gen{
		json: json.Marshal,
		jsonIndent: func(data interface{}) ([]byte, error) {
			return json.MarshalIndent(data, "", "    ")
		},
		jsonToYAML: yaml.JSONToYAML,
		debug:      console.Logger,
	}

	gen.outputTypeMap = map[string]genTypeWriter{
		OutputPHP:  gen.writeArtifacts,
		OutputJSON: gen.writeJSONGraph,
		OutputYAML: gen.writeYAMLGraph,
		"yml":      gen.writeYAMLGraph,
	}

	return &gen
}

// Config presents Gen configurations.
type Config struct {
	Debugger Debugger

	// InputFile is the Swagger 2 document, JSON or YAML
	InputFile string

	// OutputDir represents the output directory for all the generated files
	OutputDir string

	// OutputTypes define types of files which should be generated: php, json, yaml
	OutputTypes []string

	// ClientName overrides the document title as the client name
	ClientName string

	// ConfigKey overrides the configuration key derived from the client name
	ConfigKey string

	// Authentication is one of none, bearer, basic, digest
	Authentication string

	// NamespaceRoot prefixes every generated namespace
	NamespaceRoot string

	// InstanceName is used to get distinct names for the resource graph dumps.
	// The default value is "resources".
	InstanceName string

	// IncludeDeprecated keeps deprecated operations
	IncludeDeprecated bool

	// MaxShapeDepth bounds nested definition expansion in response shapes
	MaxShapeDepth int

	// Concurrency limits parallel resolution, 0 means one worker per CPU
	Concurrency int
}

type buildResult struct {
	graph     *registry.Service
	artifacts []render.Artifact
}

// graphDump is the serialized resource graph.
type graphDump struct {
	Client  registry.Identity          `json:"client"`
	Methods []*domain.MethodDescriptor `json:"methods"`
	Models  []*domain.ModelDescriptor  `json:"models"`
}

// Build resolves the input document and writes every requested output. Nothing
// is written unless resolution and rendering both succeed.
func (g *Gen) Build(config *Config) error {
	if config.Debugger != nil {
		g.debug = config.Debugger
	}
	if config.InstanceName == "" {
		config.InstanceName = DefaultInstanceName
	}
	if config.InputFile == "" {
		return fmt.Errorf("no input file given")
	}
	if _, err := os.Stat(config.InputFile); os.IsNotExist(err) {
		return fmt.Errorf("file: %s does not exist", config.InputFile)
	}

	outputTypes := g.outputTypes(config.OutputTypes)
	if len(outputTypes) == 0 {
		return fmt.Errorf("no supported output type in %q", strings.Join(config.OutputTypes, ","))
	}

	console.Logger.Debug("Generate client from %s....", config.InputFile)

	orc := orchestrator.New(&orchestrator.Config{
		ClientName:        config.ClientName,
		ConfigKey:         config.ConfigKey,
		Authentication:    config.Authentication,
		IncludeDeprecated: config.IncludeDeprecated,
		MaxShapeDepth:     config.MaxShapeDepth,
		Concurrency:       config.Concurrency,
		Debug:             g.debug,
	})

	graph, err := orc.Parse(config.InputFile)
	if err != nil {
		return err
	}

	result := &buildResult{graph: graph}
	for _, outputType := range outputTypes {
		if outputType != OutputPHP {
			continue
		}
		g.debug.Printf("Rendering artifacts...")
		result.artifacts, err = render.NewGenerator(render.WithNamespaceRoot(config.NamespaceRoot)).Generate(graph)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(config.OutputDir, os.ModePerm); err != nil {
		return err
	}

	for _, outputType := range outputTypes {
		if err := g.outputTypeMap[outputType](config, result); err != nil {
			return err
		}
	}

	return nil
}

// outputTypes normalizes the requested types, dropping unsupported and
// repeated ones.
func (g *Gen) outputTypes(requested []string) []string {
	seen := make(map[string]struct{}, len(requested))
	var types []string
	for _, outputType := range requested {
		outputType = strings.ToLower(strings.TrimSpace(outputType))
		if outputType == "yml" {
			outputType = OutputYAML
		}
		if _, ok := g.outputTypeMap[outputType]; !ok {
			console.Logger.Warn("output type '%s' not supported", outputType)
			continue
		}
		if _, ok := seen[outputType]; ok {
			continue
		}
		seen[outputType] = struct{}{}
		types = append(types, outputType)
	}
	sort.Strings(types)
	return types
}

func (g *Gen) writeArtifacts(config *Config, result *buildResult) error {
	for _, artifact := range result.artifacts {
		fileName := filepath.Join(config.OutputDir, filepath.FromSlash(artifact.Path))
		if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
			return err
		}
		if err := g.writeFile([]byte(artifact.Content), fileName); err != nil {
			return err
		}
		console.Logger.Debug("create %s at %+v", artifact.Name, fileName)
	}

	console.Logger.Info("wrote %d files to %s", len(result.artifacts), config.OutputDir)

	return nil
}

func (g *Gen) writeJSONGraph(config *Config, result *buildResult) error {
	jsonFileName := g.dumpFileName(config, "json")

	b, err := g.jsonIndent(dump(result.graph))
	if err != nil {
		return err
	}

	if err := g.writeFile(b, jsonFileName); err != nil {
		return err
	}

	console.Logger.Debug("create %s at %+v", filepath.Base(jsonFileName), jsonFileName)

	return nil
}

func (g *Gen) writeYAMLGraph(config *Config, result *buildResult) error {
	yamlFileName := g.dumpFileName(config, "yaml")

	b, err := g.json(dump(result.graph))
	if err != nil {
		return err
	}

	y, err := g.jsonToYAML(b)
	if err != nil {
		return fmt.Errorf("cannot covert json to yaml error: %s", err)
	}

	if err := g.writeFile(y, yamlFileName); err != nil {
		return err
	}

	console.Logger.Debug("create %s at %+v", filepath.Base(yamlFileName), yamlFileName)

	return nil
}

func (g *Gen) dumpFileName(config *Config, ext string) string {
	filename := DefaultInstanceName + "." + ext
	if config.InstanceName != DefaultInstanceName {
		filename = config.InstanceName + "_" + filename
	}
	return filepath.Join(config.OutputDir, filename)
}

func (g *Gen) writeFile(b []byte, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	defer f.Close()

	_, err = f.Write(b)

	return err
}

func dump(graph *registry.Service) graphDump {
	d := graphDump{
		Client:  graph.Identity(),
		Methods: graph.Methods(),
		Models:  graph.Models(),
	}
	if d.Methods == nil {
		d.Methods = []*domain.MethodDescriptor{}
	}
	if d.Models == nil {
		d.Models = []*domain.ModelDescriptor{}
	}
	return d
}
