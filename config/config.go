// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads the YAML settings file that drives title generation:
// which LLM provider to use, per-provider model names, and the prompt
// template fragments. Settings are loaded once per invocation and treated as
// immutable afterward.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider names accepted for the llm_provider setting.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
	ProviderClaude = "claude"
)

// DefaultProvider is used when llm_provider is not set.
const DefaultProvider = ProviderOpenAI

// defaultModels holds the hardcoded fallback model per provider, used when
// neither the nested nor the legacy settings key names one.
var defaultModels = map[string]string{
	ProviderOpenAI: "gpt-4o-mini",
	ProviderOllama: "gpt-oss:latest",
	ProviderClaude: "claude-3-5-sonnet-20241022",
}

// PromptSettings holds the template fragments the prompt is assembled from.
// Absent fragments are empty strings; only main is mandatory, and that is
// enforced at prompt-build time rather than at load time.
type PromptSettings struct {
	Main        string `yaml:"main"`
	WithDate    string `yaml:"with_date"`
	NoDate      string `yaml:"no_date"`
	PreContent  string `yaml:"pre_content"`
	PostContent string `yaml:"post_content"`
}

// ModelSettings is the per-provider settings block.
type ModelSettings struct {
	Model string `yaml:"model"`
}

// Settings is the parsed settings file.
type Settings struct {
	LLMProvider string         `yaml:"llm_provider"`
	WithDate    bool           `yaml:"with_date"`
	Prompt      PromptSettings `yaml:"prompt"`

	OpenAI ModelSettings `yaml:"openai"`
	Ollama ModelSettings `yaml:"ollama"`
	Claude ModelSettings `yaml:"claude"`

	// Flat model keys from settings files written before models were nested
	// per provider. Model resolves them after the nested keys.
	LegacyOpenAIModel string `yaml:"openai_model"`
	LegacyClaudeModel string `yaml:"claude_model"`
}

// Load reads and parses the settings file at path, applying defaults for
// absent optional keys. A missing or unreadable file and invalid YAML are
// configuration errors.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading settings file %q: %v", ErrConfig, path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("%w: parsing settings file %q: %v", ErrConfig, path, err)
	}

	settings.applyDefaults()
	return &settings, nil
}

func (s *Settings) applyDefaults() {
	s.LLMProvider = strings.ToLower(strings.TrimSpace(s.LLMProvider))
	if s.LLMProvider == "" {
		s.LLMProvider = DefaultProvider
	}
}

// Model resolves the model name for the given provider. Resolution order:
// the nested <provider>.model key first, the legacy flat key second, the
// hardcoded default last. The same order applies to every provider; ollama
// never had a legacy flat key.
func (s *Settings) Model(provider string) string {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		if s.OpenAI.Model != "" {
			return s.OpenAI.Model
		}
		if s.LegacyOpenAIModel != "" {
			return s.LegacyOpenAIModel
		}
	case ProviderOllama:
		if s.Ollama.Model != "" {
			return s.Ollama.Model
		}
	case ProviderClaude:
		if s.Claude.Model != "" {
			return s.Claude.Model
		}
		if s.LegacyClaudeModel != "" {
			return s.LegacyClaudeModel
		}
	}
	return defaultModels[strings.ToLower(provider)]
}
