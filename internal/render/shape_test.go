package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/go-openapi/spec"
	"github.com/google/go-cmp/cmp"
	"github.com/griffnb/core-httpgen/internal/domain"
	"github.com/griffnb/core-httpgen/internal/orchestrator"
	"github.com/griffnb/core-httpgen/internal/parser/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

func loadShapeFixtures(t *testing.T) map[string][2]string {
	t.Helper()

	archive, err := txtar.ParseFile("testdata/shapes.txtar")
	require.NoError(t, err)

	files := make(map[string]string, len(archive.Files))
	for _, f := range archive.Files {
		files[f.Name] = string(f.Data)
	}

	cases := make(map[string][2]string)
	for name, data := range files {
		base, ok := strings.CutSuffix(name, ".json")
		if !ok {
			continue
		}
		golden, ok := files[base+".golden"]
		require.True(t, ok, "fixture %s has no golden file", base)
		cases[base] = [2]string{data, golden}
	}
	require.NotEmpty(t, cases)

	return cases
}

func TestFormatShape_Golden(t *testing.T) {
	for name, fixture := range loadShapeFixtures(t) {
		t.Run("should print "+name, func(t *testing.T) {
			// Arrange
			var node domain.ShapeNode
			require.NoError(t, json.Unmarshal([]byte(fixture[0]), &node))

			// Act
			got := FormatShape(&node) + "\n"

			// Assert
			if diff := cmp.Diff(fixture[1], got); diff != "" {
				t.Errorf("FormatShape mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatShape_Idempotent(t *testing.T) {
	for name, fixture := range loadShapeFixtures(t) {
		t.Run("should print "+name+" identically every time", func(t *testing.T) {
			// Arrange
			var node domain.ShapeNode
			require.NoError(t, json.Unmarshal([]byte(fixture[0]), &node))
			first := FormatShape(&node)

			// Act
			var again domain.ShapeNode
			require.NoError(t, json.Unmarshal([]byte(fixture[0]), &again))
			second := FormatShape(&again)
			third := FormatShape(&node)

			// Assert
			assert.Equal(t, first, second)
			assert.Equal(t, first, third)
		})
	}
}

func TestFormatShape(t *testing.T) {
	t.Run("should print nil as mixed", func(t *testing.T) {
		assert.Equal(t, "mixed", FormatShape(nil))
	})

	t.Run("should never leave a dangling closer line", func(t *testing.T) {
		// Arrange
		node := domain.ArrayShape(domain.ObjectShape(
			domain.ShapeProperty{Name: "items", Shape: domain.ArrayShape(domain.ObjectShape(
				domain.ShapeProperty{Name: "id", Shape: domain.LeafShape(domain.Int)},
			))},
		))

		// Act
		got := FormatShape(node)

		// Assert
		for _, line := range strings.Split(got, "\n") {
			trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
			assert.NotEqual(t, ">", trimmed)
			assert.NotEqual(t, "}", strings.TrimSuffix(trimmed, ","), "closer should carry its array bracket: %q", line)
		}
		assert.True(t, strings.HasSuffix(got, "}>"))
		assert.Contains(t, got, "}>,")
	})

	t.Run("should honour a custom prefix and indent", func(t *testing.T) {
		// Arrange
		printer := ShapePrinter{Prefix: " *", Indent: "\t"}
		node := domain.ObjectShape(domain.ShapeProperty{Name: "ok", Shape: domain.LeafShape(domain.Bool)})

		// Act
		got := printer.Format(node)

		// Assert
		assert.Equal(t, "array{\n * \tok: bool,\n * }", got)
	})
}

func TestFormatShape_SharedDefinitions(t *testing.T) {
	t.Run("should print a deep chain of shared definitions in bounded size", func(t *testing.T) {
		// Arrange
		const levels = 25
		definitions := spec.Definitions{}
		for i := 0; i < levels; i++ {
			next := spec.RefSchema(fmt.Sprintf("#/definitions/Audit%d", i+1))
			definitions[fmt.Sprintf("Audit%d", i)] = *new(spec.Schema).
				Typed("object", "").
				SetProperty("createdBy", *next).
				SetProperty("updatedBy", *next)
		}
		definitions[fmt.Sprintf("Audit%d", levels)] = *new(spec.Schema).
			Typed("object", "").
			SetProperty("name", *spec.StringProperty())
		doc := &spec.Swagger{SwaggerProps: spec.SwaggerProps{Definitions: definitions}}

		shape, err := route.NewService(orchestrator.NewContext(doc)).
			ResolveShape(spec.RefSchema("#/definitions/Audit0"), "getAudit")
		require.NoError(t, err)

		// Act
		printed := FormatShape(shape)

		// Assert
		assert.Less(t, len(printed), 128<<10)
		assert.Contains(t, printed, "updatedBy: array<string, mixed>,")
	})
}
