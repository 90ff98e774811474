package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full settings file", func(t *testing.T) {
		path := writeSettings(t, `
llm_provider: ollama
with_date: true
ollama:
  model: llama3.2:latest
prompt:
  main: "Generate a title."
  with_date: "Use {current_date}."
  no_date: "No dates."
  pre_content: "<content>"
  post_content: "</content>"
`)

		settings, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "ollama", settings.LLMProvider)
		assert.True(t, settings.WithDate)
		assert.Equal(t, "llama3.2:latest", settings.Ollama.Model)
		assert.Equal(t, "Generate a title.", settings.Prompt.Main)
		assert.Equal(t, "Use {current_date}.", settings.Prompt.WithDate)
		assert.Equal(t, "No dates.", settings.Prompt.NoDate)
		assert.Equal(t, "<content>", settings.Prompt.PreContent)
		assert.Equal(t, "</content>", settings.Prompt.PostContent)
	})

	t.Run("defaults applied", func(t *testing.T) {
		path := writeSettings(t, `prompt: {main: "M"}`)

		settings, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, DefaultProvider, settings.LLMProvider)
		assert.False(t, settings.WithDate)
		assert.Empty(t, settings.Prompt.NoDate)
	})

	t.Run("provider name normalized", func(t *testing.T) {
		path := writeSettings(t, `llm_provider: " OpenAI "`)

		settings, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "openai", settings.LLMProvider)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.ErrorIs(t, err, ErrConfig)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeSettings(t, "prompt: [unterminated")

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrConfig)
	})
}

func TestModelResolution(t *testing.T) {
	t.Run("nested key wins over legacy", func(t *testing.T) {
		settings := &Settings{
			OpenAI:            ModelSettings{Model: "gpt-4o"},
			LegacyOpenAIModel: "gpt-3.5-turbo",
		}

		assert.Equal(t, "gpt-4o", settings.Model(ProviderOpenAI))
	})

	t.Run("legacy key wins over default", func(t *testing.T) {
		settings := &Settings{LegacyOpenAIModel: "gpt-3.5-turbo"}

		assert.Equal(t, "gpt-3.5-turbo", settings.Model(ProviderOpenAI))
	})

	t.Run("claude legacy key", func(t *testing.T) {
		settings := &Settings{LegacyClaudeModel: "claude-3-opus-20240229"}

		assert.Equal(t, "claude-3-opus-20240229", settings.Model(ProviderClaude))
	})

	t.Run("hardcoded defaults", func(t *testing.T) {
		settings := &Settings{}

		assert.Equal(t, "gpt-4o-mini", settings.Model(ProviderOpenAI))
		assert.Equal(t, "gpt-oss:latest", settings.Model(ProviderOllama))
		assert.Equal(t, "claude-3-5-sonnet-20241022", settings.Model(ProviderClaude))
	})

	t.Run("case insensitive", func(t *testing.T) {
		settings := &Settings{Ollama: ModelSettings{Model: "mistral"}}

		assert.Equal(t, "mistral", settings.Model("Ollama"))
	})
}
