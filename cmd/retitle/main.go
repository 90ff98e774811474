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


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/retitle"
	"github.com/poiesic/retitle/ai"
	"github.com/poiesic/retitle/config"
	"github.com/poiesic/retitle/paperless"
)

// Exit codes: configuration problems and per-document processing problems
// are distinguished so batch callers can decide whether to continue with the
// next document.
const (
	exitProcessing = 1
	exitConfig     = 2
)

// environment carries credentials and endpoints supplied by the caller.
// Paperless-NGX invokes post-consume scripts with DOCUMENT_ID already set.
type environment struct {
	PaperlessURL   string `envconfig:"PAPERLESS_NGX_URL" required:"true"`
	PaperlessToken string `envconfig:"PAPERLESS_NGX_API_KEY" required:"true"`
	OpenAIKey      string `envconfig:"OPENAI_API_KEY"`
	OllamaBaseURL  string `envconfig:"OLLAMA_BASE_URL"`
	OllamaKey      string `envconfig:"OLLAMA_API_KEY"`
	ClaudeKey      string `envconfig:"CLAUDE_API_KEY"`
	DocumentID     string `envconfig:"DOCUMENT_ID"`
}

func main() {
	app := &cli.App{
		Name:  "retitle",
		Usage: "Generate and apply an AI title for a Paperless-NGX document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "settings",
				Aliases: []string{"s"},
				Usage:   "Path to the YAML settings file",
				Value:   "settings.yaml",
			},
			&cli.StringFlag{
				Name:    "document-id",
				Aliases: []string{"d"},
				Usage:   "Document ID to retitle (defaults to the DOCUMENT_ID environment variable)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level: %s", c.String("log-level"))
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func run(c *cli.Context) error {
	// A .env file is optional; container deployments usually carry
	// everything in the process environment already.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	var env environment
	if err := envconfig.Process("", &env); err != nil {
		return cli.Exit(fmt.Sprintf("configuration error: %v", err), exitConfig)
	}

	documentID := c.String("document-id")
	if documentID == "" {
		documentID = env.DocumentID
	}
	if documentID == "" {
		return cli.Exit("document id is required (set --document-id or DOCUMENT_ID)", exitConfig)
	}

	settings, err := config.Load(c.String("settings"))
	if err != nil {
		return exitFor(err)
	}

	generator, err := ai.NewTitleGenerator(settings, ai.Credentials{
		OpenAIKey:     env.OpenAIKey,
		OllamaBaseURL: env.OllamaBaseURL,
		OllamaKey:     env.OllamaKey,
		ClaudeKey:     env.ClaudeKey,
	})
	if err != nil {
		return exitFor(err)
	}

	store := paperless.New(env.PaperlessURL, env.PaperlessToken)
	titler, err := retitle.New(store, generator)
	if err != nil {
		return exitFor(err)
	}

	slog.Info("starting title generation", "document_id", documentID, "provider", settings.LLMProvider)
	if err := titler.Run(context.Background(), documentID); err != nil {
		return exitFor(err)
	}
	return nil
}

// exitFor maps configuration problems to exit code 2 and per-document
// processing problems to exit code 1.
func exitFor(err error) error {
	if errors.Is(err, config.ErrConfig) {
		return cli.Exit(err.Error(), exitConfig)
	}
	return cli.Exit(err.Error(), exitProcessing)
}
