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
	"github.com/tmc/langchaingo/llms/anthropic"

	"github.com/poiesic/retitle/config"
)

// claudeMaxTokens bounds the response; a title plus tool framing never needs
// more.
const claudeMaxTokens = 1024

// titleTool forces Claude's structured output: with the tool choice pinned,
// the only valid response is the tool call carrying the schema's JSON.
var titleTool = llms.Tool{
	Type: "function",
	Function: &llms.FunctionDefinition{
		Name:        titleToolName,
		Description: "Generate a concise, descriptive title for a document",
		Parameters:  titleSchema,
	},
}

// claudeGenerator generates titles through the Anthropic messages API.
type claudeGenerator struct {
	llm      llms.Model
	settings *config.Settings
	logger   *slog.Logger
}

func newClaudeGenerator(settings *config.Settings, creds Credentials) (TitleGenerator, error) {
	if creds.ClaudeKey == "" {
		return nil, fmt.Errorf("%w: CLAUDE_API_KEY is required for the claude provider", config.ErrConfig)
	}

	model := settings.Model(config.ProviderClaude)
	client, err := anthropic.New(
		anthropic.WithToken(creds.ClaudeKey),
		anthropic.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: initializing claude client: %v", config.ErrConfig, err)
	}

	return &claudeGenerator{
		llm:      client,
		settings: settings,
		logger:   slog.Default().With("component", "claude-titler", "model", model),
	}, nil
}

// GenerateTitle sends a single message request with a forced tool call and
// extracts the title from the tool call's arguments.
func (g *claudeGenerator) GenerateTitle(ctx context.Context, text string) (string, error) {
	prompt, err := BuildPrompt(g.settings, text, time.Now())
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	g.logger.Debug("requesting title", "prompt_length", len(prompt))
	resp, err := g.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeHuman, prompt),
		},
		llms.WithMaxTokens(claudeMaxTokens),
		llms.WithTools([]llms.Tool{titleTool}),
		llms.WithToolChoice(llms.ToolChoice{
			Type:     "tool",
			Function: &llms.FunctionReference{Name: titleToolName},
		}),
	)
	if err != nil {
		return "", &ProviderCallError{Provider: config.ProviderClaude, Err: err}
	}

	for _, choice := range resp.Choices {
		for _, call := range choice.ToolCalls {
			if call.FunctionCall != nil && call.FunctionCall.Name == titleToolName {
				return ExtractTitle(call.FunctionCall.Arguments)
			}
		}
	}
	return "", fmt.Errorf("%w: no %s tool call in response", ErrResponseFormat, titleToolName)
}
