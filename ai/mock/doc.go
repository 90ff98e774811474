// Package mock provides a test double for the ai.TitleGenerator interface.
//
// The mock allows tests to run without external LLM services and enables
// controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	generator := mock.NewMockTitleGenerator()
//	title, err := generator.GenerateTitle(ctx, "some document text")
//
//	// Custom behavior injection
//	generator.GenerateTitleFunc = func(ctx context.Context, text string) (string, error) {
//	    return "Acme Corp - March Invoice", nil
//	}
//
//	// Check call counts
//	count := generator.CallCount()
//
// # Default Behavior
//
// MockTitleGenerator returns the first few words of the input text as the
// title, which is deterministic and good enough for wiring tests.
package mock
