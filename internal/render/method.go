package render

import (
	"strings"

	"github.com/griffnb/core-httpgen/internal/domain"
)

const (
	paramPrefix     = "     * @param  "
	attributeIndent = "            "
)

// methodValues builds the substitutions of one trait method and returns the
// fully qualified response class it returns.
func (g *Generator) methodValues(ns string, method *domain.MethodDescriptor) (map[string]string, string) {
	responseClass := DefaultResponseClass
	if hasTypedResponse(method) {
		responseClass = ns + `\Responses\` + responseClassName(method)
	}

	return map[string]string{
		"name":       method.Name,
		"Name":       domain.UpperFirst(method.Name),
		"response":   shortClass(responseClass),
		"method":     method.Verb,
		"summary":    normalizeSummary(method.Summary),
		"path":       pathExpression(method.Template),
		"attributes": attributeList(method.Attributes),
		"arguments":  argumentList(method.Arguments),
		"params":     paramLines(method.Arguments),
	}, responseClass
}

func shortClass(class string) string {
	return class[strings.LastIndex(class, `\`)+1:]
}

// normalizeSummary folds whitespace and ends the sentence with a period.
func normalizeSummary(summary string) string {
	summary = strings.Join(strings.Fields(summary), " ")
	if summary == "" {
		return ""
	}
	summary = strings.ReplaceAll(summary, "*/", `*\/`)
	if !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary
}

func variable(name string) string {
	return "$" + domain.Camel(name)
}

// argumentList renders the call signature.
func argumentList(args []domain.ArgumentDescriptor) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		typ := arg.SignatureType()

		part := typ.Kind.String() + " " + variable(arg.Name)
		if arg.Nullable() {
			part = "?" + part
		}

		switch {
		case arg.HasDefault:
			part += " = " + defaultLiteral(arg.Default, typ)
		case arg.DefaultsToNull():
			part += " = null"
		}

		parts[i] = part
	}
	return strings.Join(parts, ", ")
}

// paramLines renders the @param lines of the doc block. Definition
// references keep their documented type.
func paramLines(args []domain.ArgumentDescriptor) string {
	lines := make([]string, len(args))
	for i, arg := range args {
		docType := leafType(arg.Type)
		if arg.Nullable() {
			docType += "|null"
		}

		line := paramPrefix + docType + "  " + variable(arg.Name)
		if description := strings.Join(strings.Fields(arg.Description), " "); description != "" {
			line += "  " + domain.UpperFirst(description)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// pathExpression concatenates literal route text with path arguments.
func pathExpression(template domain.PathTemplate) string {
	if len(template) == 0 {
		return "''"
	}

	parts := make([]string, len(template))
	for i, part := range template {
		if part.IsParam() {
			parts[i] = variable(part.Param)
			continue
		}
		parts[i] = quote(part.Literal)
	}
	if template[0].IsParam() {
		parts = append([]string{"''"}, parts...)
	}
	return strings.Join(parts, " . ")
}

// attributeList renders the named query, body, header and cookie arguments of
// the send call, trailing comma included.
func attributeList(buckets []domain.AttributeBucket) string {
	if len(buckets) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(",")
	for _, bucket := range buckets {
		sb.WriteString("\n" + attributeIndent + string(bucket.Location) + ": [")
		for _, name := range bucket.Arguments {
			sb.WriteString("\n" + attributeIndent + "    " + quote(name) + " => " + variable(name) + ",")
		}
		sb.WriteString("\n" + attributeIndent + "],")
	}
	sb.WriteString("\n        ")
	return sb.String()
}
