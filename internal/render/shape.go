package render

import (
	"regexp"
	"strings"

	"github.com/griffnb/core-httpgen/internal/domain"
)

var bareKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ShapePrinter prints a response shape as an array-shape type for a doc
// block. Every line after the first starts with Prefix followed by one
// Indent per nesting level.
type ShapePrinter struct {
	Prefix string
	Indent string
}

// DefaultShapePrinter matches the doc blocks of generated class methods.
var DefaultShapePrinter = ShapePrinter{Prefix: "     *", Indent: "    "}

// FormatShape prints node with the default printer.
func FormatShape(node *domain.ShapeNode) string {
	return DefaultShapePrinter.Format(node)
}

// Format prints node. The output is a pure function of the node.
func (p ShapePrinter) Format(node *domain.ShapeNode) string {
	var sb strings.Builder
	p.write(&sb, node, 0)
	return sb.String()
}

func (p ShapePrinter) write(sb *strings.Builder, node *domain.ShapeNode, level int) {
	if node == nil {
		sb.WriteString("mixed")
		return
	}

	switch node.Kind {
	case domain.ShapeObject:
		if len(node.Properties) == 0 {
			sb.WriteString("array{}")
			return
		}
		sb.WriteString("array{")
		for _, prop := range node.Properties {
			p.newline(sb, level+1)
			sb.WriteString(shapeKey(prop.Name))
			sb.WriteString(": ")
			p.write(sb, prop.Shape, level+1)
			sb.WriteString(",")
		}
		p.newline(sb, level)
		sb.WriteString("}")
	case domain.ShapeArray:
		// the element keeps the array's level so closers land on one line
		sb.WriteString("array<array-key, ")
		p.write(sb, node.Element, level)
		sb.WriteString(">")
	default:
		sb.WriteString(leafType(node.Type))
	}
}

func (p ShapePrinter) newline(sb *strings.Builder, level int) {
	sb.WriteString("\n")
	sb.WriteString(p.Prefix)
	sb.WriteString(" ")
	sb.WriteString(strings.Repeat(p.Indent, level))
}

// leafType maps a normalized type to its doc-block spelling. Unexpanded
// definitions are plain keyed arrays.
func leafType(t domain.TypeDescriptor) string {
	switch t.Kind {
	case domain.TypeBool, domain.TypeString, domain.TypeInt, domain.TypeFloat:
		return t.Kind.String()
	case domain.TypeArray:
		return "array"
	case domain.TypeDefinitionRef, domain.TypeRelationship:
		return "array<string, mixed>"
	}
	return "mixed"
}

func shapeKey(name string) string {
	if bareKey.MatchString(name) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "\\'") + "'"
}
