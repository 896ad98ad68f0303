package locdata

import "context"

// Fetcher retrieves rendered documents from a URL. The first returned
// document is the main page; any further documents are the contents of
// embedded frames, in document order. Implementations may use browser
// automation to handle JavaScript-rendered content; static implementations
// return a single document.
type Fetcher interface {
	// Fetch navigates to the URL and returns the rendered documents.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]string, error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
