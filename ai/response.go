package ai

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the document store's title limit. Paperless-NGX rejects
// titles above 128 characters; anything the model returns beyond this is cut
// hard, with no word-boundary trimming.
const MaxTitleLength = 127

// ExtractTitle validates a provider's structured JSON response and returns
// the title it carries. It behaves identically for every provider; all three
// are contracted to emit the same {"title": ...} shape.
//
// Invalid JSON, a missing title key, a non-string title, and a title that is
// empty after stripping surrounding whitespace all fail with
// ErrResponseFormat. Titles longer than MaxTitleLength are truncated to the
// first MaxTitleLength characters, counted in runes so multi-byte text is
// cut at character boundaries, not byte offsets.
func ExtractTitle(raw string) (string, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return "", fmt.Errorf("%w: invalid JSON: %v", ErrResponseFormat, err)
	}

	value, ok := payload["title"]
	if !ok {
		return "", fmt.Errorf("%w: missing title field", ErrResponseFormat)
	}
	title, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: title is not a string", ErrResponseFormat)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title is empty", ErrResponseFormat)
	}

	if utf8.RuneCountInString(title) > MaxTitleLength {
		title = string([]rune(title)[:MaxTitleLength])
	}
	return title, nil
}
