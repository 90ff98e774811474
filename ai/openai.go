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
	"fmt"
	"log/slog"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/retitle/config"
)

// titleResponseFormat constrains OpenAI chat completions to the title
// schema, so the response content is the schema's JSON object and nothing
// else.
var titleResponseFormat = &openai.ResponseFormat{
	Type: "json_schema",
	JSONSchema: &openai.ResponseFormatJSONSchema{
		Name:   titleToolName,
		Strict: true,
		Schema: &openai.ResponseFormatJSONSchemaProperty{
			Type: "object",
			Properties: map[string]*openai.ResponseFormatJSONSchemaProperty{
				"title": {
					Type:        "string",
					Description: titleDescription,
				},
			},
			AdditionalProperties: false,
			Required:             []string{"title"},
		},
	},
}

// openaiGenerator generates titles through the OpenAI chat completion API.
type openaiGenerator struct {
	llm      llms.Model
	settings *config.Settings
	logger   *slog.Logger
}

func newOpenAIGenerator(settings *config.Settings, creds Credentials) (TitleGenerator, error) {
	if creds.OpenAIKey == "" {
		return nil, fmt.Errorf("%w: OPENAI_API_KEY is required for the openai provider", config.ErrConfig)
	}

	model := settings.Model(config.ProviderOpenAI)
	client, err := openai.New(
		openai.WithToken(creds.OpenAIKey),
		openai.WithModel(model),
		openai.WithResponseFormat(titleResponseFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: initializing openai client: %v", config.ErrConfig, err)
	}

	return &openaiGenerator{
		llm:      client,
		settings: settings,
		logger:   slog.Default().With("component", "openai-titler", "model", model),
	}, nil
}

// GenerateTitle sends a single chat completion request and extracts the
// title from the schema-constrained response.
func (g *openaiGenerator) GenerateTitle(ctx context.Context, text string) (string, error) {
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
		return "", &ProviderCallError{Provider: config.ProviderOpenAI, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", ErrResponseFormat)
	}

	return ExtractTitle(resp.Choices[0].Content)
}
