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


package ai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/poiesic/retitle/config"
)

// Credentials carries the provider secrets and endpoints supplied by the
// calling environment. Values are opaque to this package and are never
// persisted or logged.
type Credentials struct {
	// OpenAIKey authenticates against OpenAI. Required for the openai
	// provider.
	OpenAIKey string

	// OllamaBaseURL locates the Ollama instance, e.g. http://localhost:11434.
	// Required for the ollama provider.
	OllamaBaseURL string

	// OllamaKey is a bearer token for authenticated Ollama instances.
	// Optional; blank or whitespace-only values mean no auth.
	OllamaKey string

	// ClaudeKey authenticates against Anthropic. Required for the claude
	// provider.
	ClaudeKey string
}

// builders is the closed provider registry. Providers are a fixed set; there
// is no dynamic registration.
var builders = map[string]func(*config.Settings, Credentials) (TitleGenerator, error){
	config.ProviderOpenAI: newOpenAIGenerator,
	config.ProviderOllama: newOllamaGenerator,
	config.ProviderClaude: newClaudeGenerator,
}

// NewTitleGenerator selects and constructs the provider named by
// settings.LLMProvider, matched case-insensitively. Unknown provider names
// and missing required credentials are configuration errors raised here, at
// construction, so they surface before any document is fetched.
func NewTitleGenerator(settings *config.Settings, creds Credentials) (TitleGenerator, error) {
	name := strings.ToLower(strings.TrimSpace(settings.LLMProvider))
	if name == "" {
		name = config.DefaultProvider
	}

	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown llm_provider %q (valid providers: %s)",
			config.ErrConfig, settings.LLMProvider, strings.Join(ProviderNames(), ", "))
	}
	return build(settings, creds)
}

// ProviderNames returns the registered provider names, sorted.
func ProviderNames() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
