package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathTemplate(t *testing.T) {
	t.Run("should bind placeholders and expand values", func(t *testing.T) {
		// Arrange
		template := NewPathTemplate("/users/{userId}/posts/{postId}/").Bind("userId").Bind("postId")

		// Act
		got := template.Expand(map[string]string{"userId": "42", "postId": "7"})

		// Assert
		assert.Equal(t, "users/42/posts/7", got)
		assert.Equal(t, []string{"userId", "postId"}, template.Params())
	})

	t.Run("should leave the receiver untouched", func(t *testing.T) {
		// Arrange
		template := NewPathTemplate("pets/{id}")

		// Act
		bound := template.Bind("id")

		// Assert
		assert.Equal(t, PathTemplate{{Literal: "pets/{id}"}}, template)
		assert.Equal(t, PathTemplate{{Literal: "pets/"}, {Param: "id"}}, bound)
	})

	t.Run("should bind a placeholder repeated in the route", func(t *testing.T) {
		// Act
		template := NewPathTemplate("{id}/copy/{id}").Bind("id")

		// Assert
		assert.Equal(t, PathTemplate{{Param: "id"}, {Literal: "/copy/"}, {Param: "id"}}, template)
	})

	t.Run("should ignore unknown placeholders and missing values", func(t *testing.T) {
		// Arrange
		template := NewPathTemplate("a/{b}").Bind("c")

		// Act
		got := template.Expand(nil)

		// Assert
		assert.Equal(t, "a/{b}", got)
		assert.Empty(t, template.Params())
	})

	t.Run("should build an empty template for the root", func(t *testing.T) {
		assert.Empty(t, NewPathTemplate("/"))
	})
}

func TestArgumentDescriptor(t *testing.T) {
	t.Run("should reject unknown locations", func(t *testing.T) {
		// Act
		_, err := NewArgument("file", Mixed, false, "", "formData")

		// Assert
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgumentLocation))
		assert.Contains(t, err.Error(), `"file"`)
	})

	t.Run("should surface references as mixed in signatures", func(t *testing.T) {
		// Arrange
		arg, err := NewArgument("body", DefinitionRef("Pet"), true, " the pet ", "body")
		require.NoError(t, err)

		// Assert
		assert.Equal(t, Mixed, arg.SignatureType())
		assert.Equal(t, DefinitionRef("Pet"), arg.Type)
		assert.Equal(t, "the pet", arg.Description)
		assert.False(t, arg.Nullable())
	})

	t.Run("should derive nullability and null defaults", func(t *testing.T) {
		// Arrange
		optional, err := NewArgument("limit", Int, false, "", "query")
		require.NoError(t, err)

		// Act
		defaulted := optional.WithDefault(float64(10))

		// Assert
		assert.True(t, optional.Nullable())
		assert.True(t, optional.DefaultsToNull())
		assert.False(t, defaulted.DefaultsToNull())
		assert.Equal(t, float64(10), defaulted.Default)
		assert.False(t, optional.HasDefault)
	})
}

func TestTypeDescriptor_Text(t *testing.T) {
	tests := []TypeDescriptor{Bool, String, Int, Float, Mixed, Array, Relationship(""), Relationship("Tag"), DefinitionRef("Pet")}

	for _, want := range tests {
		t.Run("should round trip "+want.String(), func(t *testing.T) {
			// Arrange
			text, err := want.MarshalText()
			require.NoError(t, err)

			// Act
			var got TypeDescriptor
			err = got.UnmarshalText(text)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("should reject unknown kinds", func(t *testing.T) {
		var got TypeDescriptor
		assert.Error(t, got.UnmarshalText([]byte("decimal")))
	})
}

func TestShapeNode_JSON(t *testing.T) {
	t.Run("should omit the type of non-leaf nodes", func(t *testing.T) {
		// Arrange
		node := ObjectShape(ShapeProperty{Name: "id", Shape: LeafShape(Int)})

		// Act
		b, err := json.Marshal(node)

		// Assert
		require.NoError(t, err)
		assert.JSONEq(t, `{"kind":"object","properties":[{"name":"id","shape":{"kind":"leaf","type":"int"}}]}`, string(b))
	})

	t.Run("should decode kinds by name", func(t *testing.T) {
		// Act
		var node ShapeNode
		err := json.Unmarshal([]byte(`{"kind":"array","element":{"kind":"leaf","type":"definition:Pet"},"ref":""}`), &node)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, ShapeArray, node.Kind)
		assert.Equal(t, DefinitionRef("Pet"), node.Element.Type)
	})

	t.Run("should report the element definition of arrays only", func(t *testing.T) {
		// Arrange
		element := ObjectShape()
		element.Ref = "Pet"

		// Assert
		assert.Equal(t, "Pet", ArrayShape(element).ElementDefinition())
		assert.Equal(t, "", element.ElementDefinition())
		assert.Nil(t, element.Property("missing"))
	})
}

func TestModelMethodDescriptor_AccessorName(t *testing.T) {
	tests := []struct {
		method ModelMethodDescriptor
		want   string
	}{
		{ModelMethodDescriptor{Name: "first_name", Kind: AttributeMethod}, "firstName"},
		{ModelMethodDescriptor{Name: "URL", Kind: AttributeMethod}, "url"},
		{ModelMethodDescriptor{Name: "tag", Kind: HasManyMethod}, "tags"},
		{ModelMethodDescriptor{Name: "owner", Kind: HasOneMethod}, "owner"},
	}

	for _, tt := range tests {
		t.Run("should name "+tt.method.Name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.method.AccessorName())
		})
	}
}

func TestNaming(t *testing.T) {
	t.Run("should convert case", func(t *testing.T) {
		assert.Equal(t, "UserGroup", Studly("user_group"))
		assert.Equal(t, "APIKey", Studly("APIKey"))
		assert.Equal(t, "userGroup", Camel("user-group"))
		assert.Equal(t, "swagger-petstore", Slug("Swagger Petstore!"))
	})

	t.Run("should count separators in the kebab form", func(t *testing.T) {
		assert.Equal(t, 0, SeparatorCount("name"))
		assert.Equal(t, 1, SeparatorCount("customer_id"))
		assert.Equal(t, 2, SeparatorCount("billing.address.city"))
	})

	t.Run("should inflect words", func(t *testing.T) {
		assert.Equal(t, "categories", Plural("category"))
		assert.Equal(t, "Tag", Singular("Tags"))
	})

	t.Run("should take the basename of references", func(t *testing.T) {
		assert.Equal(t, "Pet", RefBasename("#/definitions/Pet"))
		assert.Equal(t, "a/b", RefBasename("#/definitions/a~1b"))
		assert.Equal(t, "", RefBasename(""))
	})
}
