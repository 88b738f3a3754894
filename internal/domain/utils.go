package domain

import (
	"path"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/strcase"
)

const wordSeparators = "_- ."

var (
	inflector   = pluralize.NewClient()
	nonSlugChar = regexp.MustCompile(`[^A-Za-z0-9]+`)
)

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// Studly converts s to StudlyCase. Names without separators keep their
// inner casing ("APIKey" stays "APIKey").
func Studly(s string) string {
	if strings.ContainsAny(s, wordSeparators) {
		return strcase.ToCamel(s)
	}
	return UpperFirst(s)
}

// Camel converts s to lowerCamelCase.
func Camel(s string) string {
	return LowerFirst(Studly(s))
}

// Kebab converts s to kebab-case.
func Kebab(s string) string {
	return strcase.ToKebab(s)
}

// SeparatorCount is the number of word separators in the kebab form of s.
func SeparatorCount(s string) int {
	return strings.Count(Kebab(s), "-")
}

// Plural returns the plural form of word.
func Plural(word string) string {
	return inflector.Plural(word)
}

// Singular returns the singular form of word.
func Singular(word string) string {
	return inflector.Singular(word)
}

// Slug lower-cases s and joins its alphanumeric runs with dashes.
func Slug(s string) string {
	s = nonSlugChar.ReplaceAllString(s, " ")
	return strings.Trim(strcase.ToKebab(strings.TrimSpace(s)), "-")
}

// RefBasename returns the last segment of a reference string.
func RefBasename(ref string) string {
	if ref == "" {
		return ""
	}
	ref = strings.TrimSuffix(ref, "/")
	base := path.Base(ref)
	if i := strings.LastIndex(base, "#"); i >= 0 {
		base = base[i+1:]
	}
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(base)
}
