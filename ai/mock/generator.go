package mock

import (
	"context"
	"strings"
)

// MockTitleGenerator is a test double for ai.TitleGenerator.
// It allows custom behavior injection via a function field.
type MockTitleGenerator struct {
	// GenerateTitleFunc is called by GenerateTitle if set.
	// If nil, uses a default deterministic behavior.
	GenerateTitleFunc func(ctx context.Context, text string) (string, error)

	callCount int
}

// NewMockTitleGenerator creates a mock title generator with default
// deterministic behavior.
// Note: Returns concrete type to allow test assertions via CallCount().
func NewMockTitleGenerator() *MockTitleGenerator {
	return &MockTitleGenerator{}
}

// GenerateTitle returns a deterministic title derived from the input text.
func (m *MockTitleGenerator) GenerateTitle(ctx context.Context, text string) (string, error) {
	m.callCount++

	if m.GenerateTitleFunc != nil {
		return m.GenerateTitleFunc(ctx, text)
	}

	// Default: first few words of the text.
	words := strings.Fields(text)
	if len(words) > 5 {
		words = words[:5]
	}
	return strings.Join(words, " "), nil
}

// CallCount returns the number of times GenerateTitle was called.
func (m *MockTitleGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count.
func (m *MockTitleGenerator) Reset() {
	m.callCount = 0
}
