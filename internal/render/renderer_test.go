package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_Render(t *testing.T) {
	renderer := NewTemplateRenderer()

	t.Run("should list every built-in template", func(t *testing.T) {
		assert.Equal(t, []string{
			TemplateClient,
			TemplateContainer,
			TemplateMethod,
			TemplateModel,
			TemplateModelAttribute,
			TemplateModelBase,
			TemplateModelHasMany,
			TemplateModelHasOne,
			TemplateResponse,
		}, renderer.TemplateIDs())
	})

	t.Run("should substitute values", func(t *testing.T) {
		// Act
		got, err := renderer.Render(TemplateModelAttribute, map[string]string{
			"name":       "email",
			"returnType": "?string",
			"attribute":  "email_address",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "    public function email(): ?string\n    {\n        return $this->getAttribute('email_address');\n    }\n", got)
	})

	t.Run("should omit the summary block when empty", func(t *testing.T) {
		// Act
		got, err := renderer.Render(TemplateMethod, map[string]string{
			"name":       "ping",
			"response":   "Response",
			"method":     "get",
			"summary":    "",
			"path":       "'ping'",
			"attributes": "",
			"arguments":  "",
			"params":     "",
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, `    /**
     * @return Response
     */
    public function ping(): Response
    {
        return $this->send(Response::class, 'get', 'ping');
    }
`, got)
	})

	t.Run("should reject an unknown template", func(t *testing.T) {
		// Act
		_, err := renderer.Render("controller", nil)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), `template "controller" not found`)
	})

	t.Run("should reject a missing substitution", func(t *testing.T) {
		// Act
		_, err := renderer.Render(TemplateModelHasOne, map[string]string{"name": "owner"})

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "render model-has-one")
	})
}
