package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griffnb/core-httpgen/internal/domain"
)

func newGraph() *Service {
	return NewService(Identity{ClientName: "Swagger Petstore", ConfigKey: "swagger", Authentication: AuthBearer})
}

func TestAddMethod(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		// Arrange
		svc := newGraph()

		// Act
		require.NoError(t, svc.AddMethod(&domain.MethodDescriptor{Name: "listPets"}))
		require.NoError(t, svc.AddMethod(&domain.MethodDescriptor{Name: "addPet"}))

		// Assert
		methods := svc.Methods()
		require.Len(t, methods, 2)
		assert.Equal(t, "listPets", methods[0].Name)
		assert.Equal(t, "addPet", methods[1].Name)
	})

	t.Run("rejects duplicates and keeps the first", func(t *testing.T) {
		// Arrange
		svc := newGraph()
		first := &domain.MethodDescriptor{Name: "getPet", Path: "pet/{id}", Verb: "get"}
		second := &domain.MethodDescriptor{Name: "getPet", Path: "pets/{id}", Verb: "get"}
		require.NoError(t, svc.AddMethod(first))

		// Act
		err := svc.AddMethod(second)

		// Assert
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
		got, ok := svc.Method("getPet")
		require.True(t, ok)
		assert.Same(t, first, got)
		assert.Len(t, svc.Methods(), 1)
	})

	t.Run("rejects inserts once sealed", func(t *testing.T) {
		// Arrange
		svc := newGraph()
		svc.Seal()

		// Act
		err := svc.AddMethod(&domain.MethodDescriptor{Name: "late"})

		// Assert
		assert.ErrorIs(t, err, ErrSealed)
		assert.Empty(t, svc.Methods())
	})
}

func TestAddModel(t *testing.T) {
	t.Run("rejects duplicates and keeps the first", func(t *testing.T) {
		// Arrange
		svc := newGraph()
		first := &domain.ModelDescriptor{Name: "Pet", Required: []string{"name"}}
		require.NoError(t, svc.AddModel(first))

		// Act
		err := svc.AddModel(&domain.ModelDescriptor{Name: "Pet"})

		// Assert
		assert.ErrorIs(t, err, domain.ErrDuplicateName)
		got, ok := svc.Model("Pet")
		require.True(t, ok)
		assert.Equal(t, []string{"name"}, got.Required)
	})

	t.Run("returns false for unknown names", func(t *testing.T) {
		_, ok := newGraph().Model("Ghost")
		assert.False(t, ok)
		_, ok = newGraph().Method("ghost")
		assert.False(t, ok)
	})

	t.Run("returns copies of the listings", func(t *testing.T) {
		svc := newGraph()
		require.NoError(t, svc.AddModel(&domain.ModelDescriptor{Name: "Pet"}))

		models := svc.Models()
		models[0] = nil

		assert.NotNil(t, svc.Models()[0])
	})
}

func TestIdentity(t *testing.T) {
	t.Run("exposes the client identity", func(t *testing.T) {
		svc := newGraph()

		assert.Equal(t, "Swagger Petstore", svc.ClientName())
		assert.Equal(t, "swagger", svc.ConfigKey())
		assert.Equal(t, AuthBearer, svc.Authentication())
	})

	t.Run("defaults authentication to none", func(t *testing.T) {
		svc := NewService(Identity{ClientName: "A", ConfigKey: "a"})
		assert.Equal(t, AuthNone, svc.Authentication())
	})

	t.Run("validates missing fields", func(t *testing.T) {
		assert.ErrorIs(t, Identity{ConfigKey: "a"}.Validate(), domain.ErrMissingIdentity)
		assert.ErrorIs(t, Identity{ClientName: "A"}.Validate(), domain.ErrMissingIdentity)
		assert.NoError(t, Identity{ClientName: "A", ConfigKey: "a"}.Validate())
	})
}

func TestParseAuthentication(t *testing.T) {
	for raw, want := range map[string]Authentication{"": AuthNone, "Bearer": AuthBearer, " basic ": AuthBasic, "digest": AuthDigest, "none": AuthNone} {
		got, err := ParseAuthentication(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseAuthentication("oauth2")
	assert.Error(t, err)
}
