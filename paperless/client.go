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


// Package paperless is a minimal client for the Paperless-NGX REST API,
// covering the two calls the titling pipeline needs: fetching a document and
// patching its title. The document store owns the document lifecycle; this
// client keeps no state between calls and never retries.
package paperless

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// requestTimeout bounds each document store call.
const requestTimeout = 30 * time.Second

// Document is the subset of the document store's record this tool reads.
// Content is the OCR-extracted text, possibly empty.
type Document struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Client performs authenticated calls against a Paperless-NGX instance.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *slog.Logger
}

// New creates a document store client for baseURL, authenticating every
// request with the given API token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: requestTimeout},
		logger:  slog.Default().With("component", "paperless-client"),
	}
}

// Document fetches the document with the given id.
func (c *Client) Document(ctx context.Context, documentID string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.documentURL(documentID), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for document %s: %v", ErrTransport, documentID, err)
	}
	c.setHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching document %s: %v", ErrTransport, documentID, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, documentID); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decoding document %s: %v", ErrTransport, documentID, err)
	}

	c.logger.Info("retrieved document", "id", documentID, "title", doc.Title)
	return &doc, nil
}

// UpdateTitle issues a partial update setting only the document's title.
func (c *Client) UpdateTitle(ctx context.Context, documentID, title string) error {
	payload, err := json.Marshal(map[string]string{"title": title})
	if err != nil {
		return fmt.Errorf("%w: encoding title update for document %s: %v", ErrTransport, documentID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.documentURL(documentID), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: building request for document %s: %v", ErrTransport, documentID, err)
	}
	c.setHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: updating document %s: %v", ErrTransport, documentID, err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, documentID); err != nil {
		return err
	}

	c.logger.Info("updated document title", "id", documentID, "title", title)
	return nil
}

func (c *Client) documentURL(documentID string) string {
	return fmt.Sprintf("%s/documents/%s/", c.baseURL, documentID)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/json")
}

func (c *Client) checkStatus(resp *http.Response, documentID string) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: document %s", ErrNotFound, documentID)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: document %s: status %d", ErrAuth, documentID, resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: document %s: status %d: %s",
			ErrTransport, documentID, resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
