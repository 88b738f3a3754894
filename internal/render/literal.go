package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/griffnb/core-httpgen/internal/domain"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quote renders s as a single-quoted literal.
func quote(s string) string {
	return "'" + quoteEscaper.Replace(s) + "'"
}

// defaultLiteral renders an argument default for a signature of type typ.
// Numbers are raw for int and float arguments, booleans are true/false, and
// anything else is quoted.
func defaultLiteral(value interface{}, typ domain.TypeDescriptor) string {
	if value == nil {
		return "null"
	}

	switch typ.Kind {
	case domain.TypeInt, domain.TypeFloat:
		if n, ok := number(value); ok {
			return n
		}
	case domain.TypeBool:
		if b, ok := value.(bool); ok {
			return strconv.FormatBool(b)
		}
	case domain.TypeArray, domain.TypeMixed:
		switch value.(type) {
		case []interface{}, map[string]interface{}:
			return valueLiteral(value)
		}
	}

	if s, ok := value.(string); ok {
		return quote(s)
	}
	return quote(fmt.Sprint(value))
}

// valueLiteral renders a decoded JSON value by its own type.
func valueLiteral(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(v)
	case string:
		return quote(v)
	case []interface{}:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = valueLiteral(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]string, len(keys))
		for i, k := range keys {
			items[i] = quote(k) + " => " + valueLiteral(v[k])
		}
		return "[" + strings.Join(items, ", ") + "]"
	}

	if n, ok := number(value); ok {
		return n
	}
	return quote(fmt.Sprint(value))
}

func number(value interface{}) (string, bool) {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	}
	return "", false
}
