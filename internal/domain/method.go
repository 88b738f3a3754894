package domain

import "strings"

// MediaTypeJSON is the media type that enables typed responses.
const MediaTypeJSON = "application/json"

// MethodDescriptor describes one generated API method.
type MethodDescriptor struct {
	// Name is unique within the resource graph.
	Name string `json:"name"`

	// Path is the route with leading and trailing slashes trimmed.
	Path string `json:"path"`

	// Verb is the lower-case HTTP verb.
	Verb string `json:"verb"`

	Summary  string   `json:"summary,omitempty"`
	Produces []string `json:"produces,omitempty"`

	// Arguments are ordered: arguments without a default first, declaration order kept within each group.
	Arguments []ArgumentDescriptor `json:"arguments,omitempty"`

	// Template is Path with path arguments bound to interpolation points.
	Template PathTemplate `json:"template"`

	// Attributes groups the non-path arguments per location.
	Attributes []AttributeBucket `json:"attributes,omitempty"`

	// Response is the resolved 200 response shape, nil when untyped.
	Response *ShapeNode `json:"response,omitempty"`
}

// AttachResponse sets the typed response shape.
func (m *MethodDescriptor) AttachResponse(shape *ShapeNode) {
	m.Response = shape
}

// ProducesJSON reports whether the method declares a JSON media type.
func (m *MethodDescriptor) ProducesJSON() bool {
	for _, mediaType := range m.Produces {
		if mediaType == MediaTypeJSON {
			return true
		}
	}
	return false
}

// AttributeBucket lists argument names sent in one location.
type AttributeBucket struct {
	Location  Location `json:"location"`
	Arguments []string `json:"arguments"`
}

// AttributeLocations is the fixed order buckets are emitted in.
var AttributeLocations = []Location{LocationQuery, LocationBody, LocationHeader, LocationCookie}

// PathPart is either literal route text or an interpolated argument.
type PathPart struct {
	Literal string `json:"literal,omitempty"`
	Param   string `json:"param,omitempty"`
}

// IsParam reports whether the part is an interpolation point.
func (p PathPart) IsParam() bool {
	return p.Param != ""
}

// PathTemplate is a route split into literal text and interpolation points.
type PathTemplate []PathPart

// NewPathTemplate builds an unbound template for path.
func NewPathTemplate(path string) PathTemplate {
	path = strings.Trim(path, "/")
	if path == "" {
		return PathTemplate{}
	}
	return PathTemplate{{Literal: path}}
}

// Bind replaces every "{name}" placeholder with an interpolation point for
// the argument name. The receiver is left untouched.
func (t PathTemplate) Bind(name string) PathTemplate {
	placeholder := "{" + name + "}"
	out := make(PathTemplate, 0, len(t)+2)

	for _, part := range t {
		if part.IsParam() || !strings.Contains(part.Literal, placeholder) {
			out = append(out, part)
			continue
		}

		pieces := strings.Split(part.Literal, placeholder)
		for i, piece := range pieces {
			if i > 0 {
				out = append(out, PathPart{Param: name})
			}
			if piece != "" {
				out = append(out, PathPart{Literal: piece})
			}
		}
	}

	return out
}

// Params returns the bound argument names in route order.
func (t PathTemplate) Params() []string {
	var params []string
	for _, part := range t {
		if part.IsParam() {
			params = append(params, part.Param)
		}
	}
	return params
}

// Expand substitutes concrete values for the interpolation points.
// Missing values expand to the empty string.
func (t PathTemplate) Expand(values map[string]string) string {
	var sb strings.Builder
	for _, part := range t {
		if part.IsParam() {
			sb.WriteString(values[part.Param])
			continue
		}
		sb.WriteString(part.Literal)
	}
	return strings.Trim(sb.String(), "/")
}
