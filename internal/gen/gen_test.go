package gen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreFile = "../../testdata/petstore.json"

type recordingDebugger struct {
	lines []string
}

func (r *recordingDebugger) Printf(format string, v ...interface{}) {
	r.lines = append(r.lines, format)
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(b)
}

func TestGen_Build(t *testing.T) {
	t.Run("should write php artifacts and graph dumps", func(t *testing.T) {
		// Arrange
		config := &Config{
			InputFile:   petstoreFile,
			OutputDir:   t.TempDir(),
			OutputTypes: []string{"php", "json", "yaml"},
		}

		// Act
		err := New().Build(config)

		// Assert
		require.NoError(t, err)
		for _, name := range []string{
			"Concerns/PetTrait.php",
			"Concerns/StoreTrait.php",
			"Concerns/UserTrait.php",
			"Responses/GetPetByIdResponse.php",
			"Models/Model.php",
			"Models/Pet.php",
			"SwaggerPetstoreClient.php",
			"resources.json",
			"resources.yaml",
		} {
			_, err := os.Stat(filepath.Join(config.OutputDir, filepath.FromSlash(name)))
			assert.NoError(t, err, name)
		}
	})

	t.Run("should dump the resource graph as json", func(t *testing.T) {
		// Arrange
		config := &Config{
			InputFile:   petstoreFile,
			OutputDir:   t.TempDir(),
			OutputTypes: []string{"json"},
		}

		// Act
		require.NoError(t, New().Build(config))

		// Assert
		var got struct {
			Client struct {
				ClientName     string `json:"clientName"`
				ConfigKey      string `json:"configKey"`
				Authentication string `json:"authentication"`
			} `json:"client"`
			Methods []struct {
				Name string `json:"name"`
				Verb string `json:"verb"`
			} `json:"methods"`
			Models []struct {
				Name string `json:"name"`
			} `json:"models"`
		}
		require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(config.OutputDir, "resources.json"))), &got))
		assert.Equal(t, "Swagger Petstore", got.Client.ClientName)
		assert.Equal(t, "swagger", got.Client.ConfigKey)
		assert.Equal(t, "none", got.Client.Authentication)
		assert.Len(t, got.Methods, 12)
		assert.Equal(t, "updatePet", got.Methods[0].Name)
		assert.Equal(t, "put", got.Methods[0].Verb)
		assert.Len(t, got.Models, 6)

		_, err := os.Stat(filepath.Join(config.OutputDir, "Concerns"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("should dump the resource graph as yaml under the instance name", func(t *testing.T) {
		// Arrange
		config := &Config{
			InputFile:    petstoreFile,
			OutputDir:    t.TempDir(),
			OutputTypes:  []string{"yml"},
			InstanceName: "petstore",
		}

		// Act
		require.NoError(t, New().Build(config))

		// Assert
		content := readFile(t, filepath.Join(config.OutputDir, "petstore_resources.yaml"))
		assert.Contains(t, content, "clientName: Swagger Petstore")
		assert.Contains(t, content, "name: getPetById")
	})

	t.Run("should ignore unsupported and repeated output types", func(t *testing.T) {
		// Arrange
		config := &Config{
			InputFile:   petstoreFile,
			OutputDir:   t.TempDir(),
			OutputTypes: []string{" JSON ", "json", "go"},
		}

		// Act
		require.NoError(t, New().Build(config))

		// Assert
		entries, err := os.ReadDir(config.OutputDir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "resources.json", entries[0].Name())
	})

	t.Run("should apply the configured identity and namespace", func(t *testing.T) {
		// Arrange
		config := &Config{
			InputFile:         petstoreFile,
			OutputDir:         t.TempDir(),
			OutputTypes:       []string{"php"},
			ClientName:        "Acme Pets",
			ConfigKey:         "acme-pets",
			Authentication:    "Bearer",
			NamespaceRoot:     `Vendor\Clients`,
			IncludeDeprecated: true,
		}

		// Act
		require.NoError(t, New().Build(config))

		// Assert
		client := readFile(t, filepath.Join(config.OutputDir, "AcmePetsClient.php"))
		assert.Contains(t, client, "namespace Vendor\\Clients\\Acme;")
		assert.Contains(t, client, "config('services.acme-pets', [])")
		assert.Contains(t, client, "->withToken(")

		trait := readFile(t, filepath.Join(config.OutputDir, "Concerns", "PetTrait.php"))
		assert.Contains(t, trait, "public function findPetsByTags(")
	})

	t.Run("should report orchestration steps to the debugger", func(t *testing.T) {
		// Arrange
		debugger := &recordingDebugger{}
		config := &Config{
			InputFile:   petstoreFile,
			OutputDir:   t.TempDir(),
			OutputTypes: []string{"php"},
			Debugger:    debugger,
		}

		// Act
		require.NoError(t, New().Build(config))

		// Assert
		assert.Contains(t, strings.Join(debugger.lines, "\n"), "Orchestrator: Step 1")
		assert.Contains(t, debugger.lines, "Rendering artifacts...")
	})
}

func TestGen_Build_Errors(t *testing.T) {
	t.Run("should fail on a missing input file without writing", func(t *testing.T) {
		// Arrange
		outputDir := filepath.Join(t.TempDir(), "out")
		config := &Config{
			InputFile:   "testdata/missing.json",
			OutputDir:   outputDir,
			OutputTypes: []string{"php"},
		}

		// Act
		err := New().Build(config)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
		_, statErr := os.Stat(outputDir)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("should fail on an invalid authentication without writing", func(t *testing.T) {
		// Arrange
		outputDir := filepath.Join(t.TempDir(), "out")
		config := &Config{
			InputFile:      petstoreFile,
			OutputDir:      outputDir,
			OutputTypes:    []string{"php", "json"},
			Authentication: "oauth",
		}

		// Act
		err := New().Build(config)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "oauth")
		_, statErr := os.Stat(outputDir)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("should fail without an input file", func(t *testing.T) {
		// Act
		err := New().Build(&Config{OutputDir: t.TempDir(), OutputTypes: []string{"php"}})

		// Assert
		require.Error(t, err)
	})

	t.Run("should fail when no output type is supported", func(t *testing.T) {
		// Act
		err := New().Build(&Config{InputFile: petstoreFile, OutputDir: t.TempDir(), OutputTypes: []string{"go"}})

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no supported output type")
	})
}
