package schema

import (
	"testing"

	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/assert"
)

func TestIsRefSchema(t *testing.T) {
	t.Run("detects reference schema", func(t *testing.T) {
		// Act
		isRef := IsRefSchema(spec.RefSchema("#/definitions/User"))

		// Assert
		assert.True(t, isRef)
	})

	t.Run("returns false for non-reference schema", func(t *testing.T) {
		// Arrange
		schema := &spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{"object"}}}

		// Act
		isRef := IsRefSchema(schema)

		// Assert
		assert.False(t, isRef)
		assert.False(t, IsRefSchema(nil))
	})
}

func TestRefName(t *testing.T) {
	t.Run("should return the last pointer token", func(t *testing.T) {
		assert.Equal(t, "Pet", RefName(spec.MustCreateRef("#/definitions/Pet")))
		assert.Equal(t, "a/b", RefName(spec.MustCreateRef("#/definitions/a~1b")))
	})

	t.Run("should fall back to the path basename", func(t *testing.T) {
		assert.Equal(t, "Pet.json", RefName(spec.MustCreateRef("models/Pet.json")))
	})
}

func TestLocalNames(t *testing.T) {
	t.Run("should extract names per section", func(t *testing.T) {
		// Arrange
		def := spec.MustCreateRef("#/definitions/Order")
		param := spec.MustCreateRef("#/parameters/limit")
		resp := spec.MustCreateRef("#/responses/NotFound")

		// Act
		defName, defOK := DefinitionName(def)
		paramName, paramOK := ParameterName(param)
		respName, respOK := ResponseName(resp)

		// Assert
		assert.True(t, defOK)
		assert.Equal(t, "Order", defName)
		assert.True(t, paramOK)
		assert.Equal(t, "limit", paramName)
		assert.True(t, respOK)
		assert.Equal(t, "NotFound", respName)
	})

	t.Run("should reject references into other sections", func(t *testing.T) {
		_, ok := DefinitionName(spec.MustCreateRef("#/parameters/limit"))
		assert.False(t, ok)

		_, ok = DefinitionName(spec.MustCreateRef("other.json#/definitions/Order"))
		assert.False(t, ok)
	})
}

func TestCollectRefs(t *testing.T) {
	t.Run("should collect distinct nested references without following them", func(t *testing.T) {
		// Arrange
		s := mustSchema(t, `{
			"type": "object",
			"properties": {
				"owner": {"$ref": "#/definitions/User"},
				"meta": {"type": "object", "properties": {"editor": {"$ref": "#/definitions/User"}}},
				"tags": {"type": "array", "items": {"$ref": "#/definitions/Tag"}},
				"name": {"type": "string"}
			}
		}`)

		// Act
		refs := CollectRefs(s)

		// Assert
		assert.ElementsMatch(t, []string{"#/definitions/User", "#/definitions/Tag"}, refs)
	})

	t.Run("should ignore the node's own reference", func(t *testing.T) {
		assert.Empty(t, CollectRefs(spec.RefSchema("#/definitions/User")))
	})

	t.Run("should return exactly one ref for a wrapper object", func(t *testing.T) {
		s := mustSchema(t, `{"type":"object","properties":{"data":{"$ref":"#/definitions/Category"}}}`)
		assert.Equal(t, []string{"#/definitions/Category"}, CollectRefs(s))
	})
}
