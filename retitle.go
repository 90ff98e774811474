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


// Package retitle wires the document store client and the configured title
// generator into the end-to-end pipeline for a single document: fetch the
// OCR content, generate a title, write it back.
package retitle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/retitle/ai"
	"github.com/poiesic/retitle/paperless"
)

// DocumentStore is the document-management service surface the titler needs:
// one read, one partial update.
type DocumentStore interface {
	// Document fetches the document with the given id.
	Document(ctx context.Context, documentID string) (*paperless.Document, error)

	// UpdateTitle sets only the title of the document with the given id.
	UpdateTitle(ctx context.Context, documentID, title string) error
}

// Titler runs the titling pipeline for one document per invocation. It holds
// no state between runs and performs no retries; a failed run leaves the
// document untouched apart from whatever step already completed.
type Titler struct {
	store     DocumentStore
	generator ai.TitleGenerator
	logger    *slog.Logger
}

// New creates a Titler from its two collaborators.
func New(store DocumentStore, generator ai.TitleGenerator) (*Titler, error) {
	if store == nil {
		return nil, ErrDocumentStoreRequired
	}
	if generator == nil {
		return nil, ErrTitleGeneratorRequired
	}
	return &Titler{
		store:     store,
		generator: generator,
		logger:    slog.Default().With("component", "titler"),
	}, nil
}

// Run fetches the document, generates a title from its content, and writes
// the title back. Documents with empty or whitespace-only content fail with
// ErrEmptyContent before any provider is invoked. The first failing step
// aborts the run; there is no rollback, so a run that fails at the update
// step leaves the original title in place.
func (t *Titler) Run(ctx context.Context, documentID string) error {
	t.logger.Info("fetching document", "id", documentID)
	doc, err := t.store.Document(ctx, documentID)
	if err != nil {
		return fmt.Errorf("fetching document %s: %w", documentID, err)
	}

	if strings.TrimSpace(doc.Content) == "" {
		return fmt.Errorf("%w: document %s", ErrEmptyContent, documentID)
	}

	t.logger.Info("generating title", "id", documentID, "current_title", doc.Title)
	title, err := t.generator.GenerateTitle(ctx, doc.Content)
	if err != nil {
		return fmt.Errorf("generating title for document %s: %w", documentID, err)
	}

	t.logger.Info("updating title", "id", documentID, "title", title)
	if err := t.store.UpdateTitle(ctx, documentID, title); err != nil {
		return fmt.Errorf("updating title for document %s: %w", documentID, err)
	}

	t.logger.Info("document retitled", "id", documentID)
	return nil
}
