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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/poiesic/retitle/config"
)

// bearerTransport injects an Authorization header into every request sent to
// an authenticated Ollama instance.
type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+t.token)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// ollamaHTTPClient builds the HTTP client for the Ollama transport. Blank or
// whitespace-only API keys mean an unauthenticated instance, not an error,
// and set no Authorization header.
func ollamaHTTPClient(apiKey string) *http.Client {
	client := &http.Client{Timeout: callTimeout}
	if token := strings.TrimSpace(apiKey); token != "" {
		client.Transport = &bearerTransport{token: token}
	}
	return client
}

// ollamaGenerator generates titles through a locally reachable Ollama
// instance.
type ollamaGenerator struct {
	llm      llms.Model
	settings *config.Settings
	baseURL  string
	model    string
	logger   *slog.Logger
}

func newOllamaGenerator(settings *config.Settings, creds Credentials) (TitleGenerator, error) {
	if creds.OllamaBaseURL == "" {
		return nil, fmt.Errorf("%w: OLLAMA_BASE_URL is required for the ollama provider", config.ErrConfig)
	}

	model := settings.Model(config.ProviderOllama)
	client, err := ollama.New(
		ollama.WithServerURL(creds.OllamaBaseURL),
		ollama.WithModel(model),
		ollama.WithFormat("json"),
		ollama.WithHTTPClient(ollamaHTTPClient(creds.OllamaKey)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: initializing ollama client: %v", config.ErrConfig, err)
	}

	return &ollamaGenerator{
		llm:      client,
		settings: settings,
		baseURL:  creds.OllamaBaseURL,
		model:    model,
		logger:   slog.Default().With("component", "ollama-titler", "model", model),
	}, nil
}

// GenerateTitle sends a single JSON-format chat request and extracts the
// title from the response.
func (g *ollamaGenerator) GenerateTitle(ctx context.Context, text string) (string, error) {
	prompt, err := BuildPrompt(g.settings, text, time.Now())
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	g.logger.Debug("requesting title", "prompt_length", len(prompt))
	resp, err := g.llm.GenerateContent(ctx, []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	})
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return "", fmt.Errorf("%w: ollama at %s is not reachable: %v", ErrProviderUnavailable, g.baseURL, err)
		}
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return "", fmt.Errorf("%w: model %q is not installed, pull it with: ollama pull %s",
				ErrProviderUnavailable, g.model, g.model)
		}
		return "", &ProviderCallError{Provider: config.ProviderOllama, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrResponseFormat)
	}

	return ExtractTitle(resp.Choices[0].Content)
}
