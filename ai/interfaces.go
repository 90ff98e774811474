package ai

import (
	"context"
	"time"
)

// TitleGenerator produces a concise document title from OCR text.
// Implementations are cheap to construct per invocation and should not be
// assumed safe for concurrent reuse.
type TitleGenerator interface {
	// GenerateTitle builds the configured prompt around text, performs a
	// single provider call, and returns the parsed title, truncated to
	// MaxTitleLength characters. It never retries and never falls back to
	// another provider.
	GenerateTitle(ctx context.Context, text string) (string, error)
}

// callTimeout bounds each provider call. The upstream APIs apply their own
// transport defaults; this is a defensive ceiling so a hung call cannot
// stall the whole invocation indefinitely.
const callTimeout = 30 * time.Second
