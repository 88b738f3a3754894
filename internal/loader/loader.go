package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-openapi/spec"
	"sigs.k8s.io/yaml"
)

// Load reads and validates the document at path
func (s *Service) Load(path string) (*LoadResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}
	if s.maxSize > 0 && info.Size() > s.maxSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrInvalidFormat, path, info.Size(), s.maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	format, ok := s.extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		format = sniff(data)
		s.debug.Printf("loader: unknown extension for %s, reading as %s", path, format)
	}

	doc, err := s.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	s.debug.Printf("loader: read %s (%s, %d paths, %d definitions)", path, format, countPaths(doc), len(doc.Definitions))

	return &LoadResult{Document: doc, Path: path, Format: format}, nil
}

// Parse decodes a document in the given format and checks its envelope
func (s *Service) Parse(data []byte, format Format) (*spec.Swagger, error) {
	raw := data
	if format == FormatYAML {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		raw = converted
	}

	var doc spec.Swagger
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if err := validateEnvelope(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func validateEnvelope(doc *spec.Swagger) error {
	if doc.Swagger == "" {
		return fmt.Errorf("%w: missing swagger version field", ErrInvalidFormat)
	}
	if !strings.HasPrefix(doc.Swagger, "2.") {
		return fmt.Errorf("%w: unsupported swagger version %q, expected 2.x", ErrInvalidFormat, doc.Swagger)
	}
	return nil
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

func countPaths(doc *spec.Swagger) int {
	if doc.Paths == nil {
		return 0
	}
	return len(doc.Paths.Paths)
}
